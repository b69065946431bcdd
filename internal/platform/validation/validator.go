package validation

// FieldErrors maps the json name of each invalid field to its message.
type FieldErrors map[string]string

// Validator checks a decoded request body. A nil result means the value is valid.
type Validator interface {
	Validate(v any) FieldErrors
}
