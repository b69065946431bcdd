package validation

// StubValidator accepts every value unless ValidateFunc is set.
type StubValidator struct {
	ValidateFunc func(v any) FieldErrors
}

var _ Validator = (*StubValidator)(nil)

func (s *StubValidator) Validate(v any) FieldErrors {
	if s.ValidateFunc == nil {
		return nil
	}
	return s.ValidateFunc(v)
}
