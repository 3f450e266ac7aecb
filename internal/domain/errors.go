package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrMissingAgency     = errors.New("sesión sin agencia asociada")
	ErrCategoryNotFound  = errors.New("categoría de servicios no encontrada")
	ErrUpstream          = errors.New("error del API remoto")
	ErrUploadAfterCreate = errors.New("tender creado pero la carga del documento falló")
)
