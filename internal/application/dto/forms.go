package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm credenciales del formulario de acceso.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// RegisterForm alta de agencia + usuario.
type RegisterForm struct {
	CompanyName     string `form:"companyName" validate:"required"`
	TinNumber       string `form:"tinNumber" validate:"required"`
	Website         string `form:"website" validate:"omitempty,url"`
	ContactPerson   string `form:"contactPerson"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// ProfileForm edición del perfil de agencia. El TIN no se edita desde aquí.
type ProfileForm struct {
	CompanyName   string `form:"companyName" validate:"required"`
	Website       string `form:"website" validate:"omitempty,url"`
	ContactPerson string `form:"contactPerson"`
}

// mensajes amigables por campo+regla; lo demás cae en el genérico.
var formMessages = map[string]string{
	"Email/required":           "Email is required",
	"Email/email":              "Enter a valid email",
	"Password/required":        "Password is required",
	"Password/min":             "Password should be of minimum 8 characters length",
	"ConfirmPassword/required": "Confirm your password",
	"ConfirmPassword/eqfield":  "Passwords must match",
	"CompanyName/required":     "Company name is required",
	"TinNumber/required":       "TIN number is required",
	"Website/url":              "Enter a valid URL",
}

// ValidateForm valida un struct de formulario con sus tags y devuelve un mapa
// campo → mensaje. Vacío significa válido.
func ValidateForm(form any) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission"
		return errs
	}
	for _, fe := range invalid {
		if msg, found := formMessages[fe.Field()+"/"+fe.Tag()]; found {
			errs[fe.Field()] = msg
			continue
		}
		errs[fe.Field()] = fe.Field() + " is invalid"
	}
	return errs
}

// TrimSpaces recorta in situ los campos string indicados.
func TrimSpaces(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
