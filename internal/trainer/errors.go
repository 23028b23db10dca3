package trainer

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNotFinite is the reason recorded when a numeric field is NaN or ±Inf.
var ErrNotFinite = errors.New("must be finite")

// ConfigurationError reports an invalid training configuration.
//
// It is returned before any forward pass runs.
type ConfigurationError struct {
	Field  string // Config field name (e.g., "LearningRate")
	Reason string // Human-readable constraint that failed
	Err    error  // Underlying cause, if any
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// fromValidation converts the first validator failure into a ConfigurationError.
func fromValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Field: "Config", Reason: err.Error(), Err: err}
	}

	fe := verrs[0]
	return &ConfigurationError{Field: fe.Field(), Reason: describeTag(fe), Err: err}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be > %s (got %v)", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be >= %s (got %v)", fe.Param(), fe.Value())
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check (got %v)", fe.Tag(), fe.Value())
	}
}
