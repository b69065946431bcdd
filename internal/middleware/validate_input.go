package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/platform/validation"
)

var errInvalidInput = errors.New("invalid input")

// ValidateInput checks the T stored by DecodePayload and answers 400 with the failed fields.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.Validate(params); errs != nil {
				web.RespondBadRequest(w, errInvalidInput, message.InvalidInput, errs)
				return
			}

			slog.Debug("Input is valid.")
			next.ServeHTTP(w, r)
		})
	}
}
