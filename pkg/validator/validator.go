package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un DTO y devuelve los campos fallidos.
// Lista vacía = struct válido.
func ValidateStruct(data interface{}) []FieldError {
	var out []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return out
}

// Describe resume los errores en una sola línea legible para respuestas HTTP.
func Describe(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", e.Field, e.Tag, e.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Tag))
	}
	return strings.Join(parts, "; ")
}
