package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError mensaje de validación asociado a un campo del body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Reportar el nombre JSON del campo, no el nombre Go (el cliente ve el body tal cual lo envió).
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct valida un DTO según sus tags `validate` y devuelve los errores por campo.
// Slice vacío (nil) significa entrada válida.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}
