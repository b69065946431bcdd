package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

var errTrailingData = errors.New("body holds more than one json value")

// DecodePayload parses the body into a T, capped at bodySize bytes, and puts
// it in the request context for ParamsFromContext.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)

			payload, err := decodeStrict[T](r.Body)
			if err != nil {
				slog.Debug("Rejected request payload.", "path", r.URL.Path, "reason", err)
				respondDecodeErr(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(web.NewContextWithParams(r.Context(), payload)))
		})
	}
}

func decodeStrict[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return payload, fmt.Errorf("%w: %w", errTrailingData, err)
	}

	return payload, nil
}

func respondDecodeErr(w http.ResponseWriter, err error) {
	var (
		tooLarge *http.MaxBytesError
		typeErr  *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &tooLarge):
		web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
	case errors.Is(err, timex.ErrInvalidDate):
		web.RespondBadRequest(w, err, message.DateInputError, nil)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"field": typeErr.Field})
	default:
		if field, ok := unknownField(err); ok {
			web.RespondUnprocessableEntity(w, err, message.UnknownField, map[string]string{"field": field})
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	}
}

// unknownField extracts the name encoding/json reports under DisallowUnknownFields.
// The decoder exposes no typed error for it.
func unknownField(err error) (string, bool) {
	name, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}
	return strings.Trim(name, `"`), true
}
