// Package response содержит единый формат JSON-ответа с ошибкой
// и вспомогательные функции для его отправки.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

// StatusError: значение поля status в ответе с ошибкой.
const StatusError = "Error"

// Общие тексты ошибок. Детали в ответ не попадают, только в лог.
const (
	MsgInvalidBody    = "Invalid request data"
	MsgInternal       = "Internal server error"
	MsgUnauthorized   = "Unauthorized"
	MsgForbidden      = "Forbidden"
	MsgTooManyRequest = "Too many requests"
)

// ErrorResponse описывает тело ответа с ошибкой.
type ErrorResponse struct {
	Status  string `json:"status" example:"Error"`
	Message string `json:"message" example:"Invalid request data"`
}

// MessageResponse: ответ, содержащий только сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: msg,
	}
}

// JSONError отправляет ErrorResponse с кодом code.
func JSONError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, Error(msg))
}

// ValidationMessage собирает человеко-читаемое описание ошибок валидации для логов.
func ValidationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var errsMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return strings.Join(errsMsgs, ", ")
}
