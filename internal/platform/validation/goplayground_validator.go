package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/go-playground/validator/v10"
)

const tagFuture = "future"

type GoPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*GoPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(tagFuture, isFuture); err != nil {
		panic(err)
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

func (va *GoPlaygroundValidator) Validate(v any) FieldErrors {
	err := va.v.Struct(v)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return nil
	}

	errMap := make(FieldErrors, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		if isNumber(e.Kind()) {
			return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		if isNumber(e.Kind()) {
			return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case tagFuture:
		return fmt.Sprintf("%s must be a future date", e.Field())
	case "eqfield":
		return fmt.Sprintf("%s should match %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// isFuture accepts calendar days after today and instants after now.
func isFuture(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case timex.Date:
		return v.After(timex.Today())
	case time.Time:
		return v.After(time.Now())
	default:
		return false
	}
}
