package web

import (
	"log/slog"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/ferdiebergado/gopherkit/http/response"
)

// OKResponse represents the structure of a JSON-encoded success response.
//
// It includes an optional message and optional data payload. The generic type
// parameter T allows OKResponse to carry arbitrary response data.
//
// The Data field is omitted from the response if it is nil.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field-level
// validation errors. The Errors field is omitted from the response if empty.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes a JSON-encoded success response to w with the provided HTTP status code.
//
// If msg is non-nil, its value is included in the response under the "message" field.
// If data is non-nil, it is included under the "data" field.
//
// The JSON response has the form:
//
//	{
//	  "message": "Hotel created.",
//	  "data": {
//	    "id": 1,
//	    "name": "Hotel_1"
//	  }
//	}
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &OKResponse[*T]{}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged and never sent to the client. Client errors are logged
// at warn level, server errors at error level.
//
// The JSON response has the form:
//
//	{
//	  "message": "Invalid input.",
//	  "errors": {
//	    "email": "email must be a valid email address"
//	  }
//	}
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "status", status, "reason", reason)
	} else {
		slog.Warn("request failed", "status", status, "reason", reason)
	}

	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}

func RespondOK[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusCreated, msg, data)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnauthorized, err, msg, errs)
}

func RespondForbidden(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusForbidden, err, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, err, msg, errs)
}

func RespondConflict(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusConflict, err, msg, errs)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, err, msg, errs)
}

func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
}

func RespondRequestTimeout(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestTimeout, err, msg, errs)
}

func RespondServiceUnavailable(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusServiceUnavailable, err, msg, errs)
}
