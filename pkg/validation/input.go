package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/rent-or-own/pkg/mathutil"
)

// ErrInvalidInput is the single error kind reported for out-of-domain,
// non-numeric or missing input parameters.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes why a single input field was rejected.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

// Is lets errors.Is match any InputError against ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds an InputError with a formatted reason.
func Invalid(field, format string, args ...interface{}) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Missing reports a required field that was not supplied.
func Missing(field string) error {
	return &InputError{Field: field, Reason: "required field is missing"}
}

// CheckFinite rejects NaN and infinite values.
func CheckFinite(field string, value float64) error {
	if !mathutil.IsFinite(value) {
		return Invalid(field, "value is not a finite number")
	}
	return nil
}

// CheckPositive requires value > 0.
func CheckPositive(field string, value float64) error {
	if err := CheckFinite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return Invalid(field, "must be greater than 0, got %g", value)
	}
	return nil
}

// CheckNonNegative requires value >= 0.
func CheckNonNegative(field string, value float64) error {
	if err := CheckFinite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return Invalid(field, "must be at least 0, got %g", value)
	}
	return nil
}

// CheckRange requires minInclusive <= value <= maxInclusive.
func CheckRange(field string, value, minInclusive, maxInclusive float64) error {
	if err := CheckFinite(field, value); err != nil {
		return err
	}
	if value < minInclusive || value > maxInclusive {
		return Invalid(field, "must be in the range [%g; %g], got %g", minInclusive, maxInclusive, value)
	}
	return nil
}

// CheckGreaterThan requires value > exclusiveMin.
func CheckGreaterThan(field string, value, exclusiveMin float64) error {
	if err := CheckFinite(field, value); err != nil {
		return err
	}
	if value <= exclusiveMin {
		return Invalid(field, "must be greater than %g, got %g", exclusiveMin, value)
	}
	return nil
}

// CheckIntRange requires minInclusive <= value <= maxInclusive.
func CheckIntRange(field string, value, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return Invalid(field, "must be in the range [%d; %d], got %d", minInclusive, maxInclusive, value)
	}
	return nil
}

// CheckPositiveInt requires value > 0.
func CheckPositiveInt(field string, value int) error {
	if value <= 0 {
		return Invalid(field, "must be greater than 0, got %d", value)
	}
	return nil
}
