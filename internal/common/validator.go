package common

import "fmt"

// ValidationError aggregates every violated rule for one request so the client
// sees all of them at once instead of fixing fields one by one.
type ValidationError struct {
	Errors map[string]string
	cause  error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

// Unwrap exposes the underlying failure for server-side diagnostics. The cause
// is never serialized into a response.
func (e ValidationError) Unwrap() error {
	return e.cause
}

// NewValidationError builds a single-field validation failure. The optional
// cause is kept for logging only.
func NewValidationError(field, message string, cause error) ValidationError {
	return ValidationError{
		Errors: map[string]string{field: message},
		cause:  cause,
	}
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) CheckStringLength(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
