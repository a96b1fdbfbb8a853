package laws

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Code groups violations by the optic kind whose law failed.
type Code string

// Violation codes.
const (
	CodeLens      Code = "LENS_LAW"
	CodePrism     Code = "PRISM_LAW"
	CodeIso       Code = "ISO_LAW"
	CodeSetter    Code = "SETTER_LAW"
	CodeTraversal Code = "TRAVERSAL_LAW"
	CodeOptional  Code = "OPTIONAL_LAW"
	CodeFold      Code = "FOLD_LAW"
	CodeCompose   Code = "COMPOSE_LAW"
)

// Violation reports one failed law on one input.
type Violation struct {
	Code    Code           `json:"code"`
	Law     string         `json:"law"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Seed    int            `json:"seed,omitempty"`
	cause   error
}

// NewViolation creates a violation of law.
func NewViolation(code Code, law, message string) *Violation {
	return &Violation{Code: code, Law: law, Message: message}
}

// Error implements the error interface.
func (v *Violation) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", v.Code, v.Law, v.Message)
	if len(v.Details) > 0 {
		msg += fmt.Sprintf(" %v", v.Details)
	}
	if v.cause != nil {
		msg += ": " + v.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (v *Violation) Unwrap() error {
	return v.cause
}

// WithCause sets the underlying cause.
func (v *Violation) WithCause(cause error) *Violation {
	v.cause = cause
	return v
}

// WithDetail adds a detail to the violation.
func (v *Violation) WithDetail(key string, value any) *Violation {
	if v.Details == nil {
		v.Details = make(map[string]any)
	}
	v.Details[key] = value
	return v
}

// Is matches another violation with the same code.
func (v *Violation) Is(target error) bool {
	if t, ok := target.(*Violation); ok {
		return v.Code == t.Code
	}
	return errors.Is(v.cause, target)
}

// MarshalJSON implements json.Marshaler. Details are rendered with %v so
// that arbitrary focus types stay printable.
func (v *Violation) MarshalJSON() ([]byte, error) {
	details := make(map[string]string, len(v.Details))
	for k, d := range v.Details {
		details[k] = fmt.Sprintf("%v", d)
	}
	aux := struct {
		Code    Code              `json:"code"`
		Law     string            `json:"law"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
		Seed    int               `json:"seed,omitempty"`
		Cause   string            `json:"cause,omitempty"`
	}{Code: v.Code, Law: v.Law, Message: v.Message, Details: details, Seed: v.Seed}
	if v.cause != nil {
		aux.Cause = v.cause.Error()
	}
	return json.Marshal(aux)
}

// AsType is a generic error type assertion over the error chain.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Violations collects every *Violation in err, including joined errors.
func Violations(err error) []*Violation {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Violation
		for _, e := range joined.Unwrap() {
			out = append(out, Violations(e)...)
		}
		return out
	}
	if v, ok := AsType[*Violation](err); ok {
		return []*Violation{v}
	}
	return nil
}
