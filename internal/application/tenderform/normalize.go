package tenderform

// Los inputs datetime-local del navegador manejan "YYYY-MM-DDTHH:MM"
// (16 caracteres, precisión de minuto); el API guarda y devuelve precisión de
// segundos. Estas dos funciones convierten entre ambas representaciones.

// minutePrecisionLen es la longitud exacta de un datetime con precisión de minuto.
const minutePrecisionLen = 16

// EnsureSeconds agrega ":00" a un valor con precisión de minuto. Es
// idempotente: un valor que ya trae segundos (o cualquier otra longitud)
// vuelve sin cambios, así que renormalizar nunca duplica el sufijo.
func EnsureSeconds(value string) string {
	if len(value) == minutePrecisionLen {
		return value + ":00"
	}
	return value
}

// ForEditing trunca un datetime guardado a precisión de minuto para poblar el
// input de edición. Valores más cortos (o vacíos) pasan tal cual.
func ForEditing(value string) string {
	if len(value) >= minutePrecisionLen {
		return value[:minutePrecisionLen]
	}
	return value
}
