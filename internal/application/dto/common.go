package dto

import "github.com/tu-usuario/partsflow/pkg/validate"

// ErrorResponse cuerpo de error HTTP. Errors solo viene en fallos de
// validación (lista de mensajes por campo derivada del schema del body).
type ErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}
