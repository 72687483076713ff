package pattern

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidMaxDuty is returned by Duty for a maximum duty that is
	// zero, negative or not a finite number.
	ErrInvalidMaxDuty = errors.New("invalid max duty")
	// ErrZeroMaxDuty is the zero case of ErrInvalidMaxDuty.
	ErrZeroMaxDuty = fmt.Errorf("%w: must not be zero", ErrInvalidMaxDuty)
	// ErrDutyOverflow is returned when the scaled duty does not fit the
	// requested numeric type.
	ErrDutyOverflow = errors.New("duty not representable")
)

// Number is every numeric type Duty can scale to.
type Number interface {
	constraints.Integer | constraints.Float
}

// AsPercentage returns the duty of p as a value from -1.0 to 0.99,
// computed in single precision as (code - 100) / 100.
func (p Pattern) AsPercentage() float32 {
	return (float32(p.Code()) - 100.0) / 100.0
}

// AsAbsPercentage returns the duty of p rescaled to 0.0..1.0.
func (p Pattern) AsAbsPercentage() float32 {
	return (p.AsPercentage() + 1.0) / 2.0
}

// AsPulseWidth returns the servo style pulse width the driver decodes
// p from: 1000µs for code 0 up to 1995µs for code 199, in 5µs steps.
func (p Pattern) AsPulseWidth() time.Duration {
	return 1500*time.Microsecond + time.Duration(int(p.Code())-100)*5*time.Microsecond
}

// Duty scales p to a value from 0 to maxDuty, where maxDuty is the
// full scale of the caller's PWM output. The scaled value is computed
// in single precision and converted to T, truncating toward zero for
// integer types (0.495 * 255 yields 126).
//
// A zero maxDuty yields ErrZeroMaxDuty. A negative or NaN maxDuty, or
// one beyond float32 range, yields ErrInvalidMaxDuty. The returned
// value is zero whenever err is set.
func Duty[T Number](p Pattern, maxDuty T) (T, error) {
	if maxDuty == 0 {
		return 0, ErrZeroMaxDuty
	}
	if maxDuty < 0 {
		return 0, fmt.Errorf("%w: %v is negative", ErrInvalidMaxDuty, maxDuty)
	}
	if math.IsNaN(float64(maxDuty)) {
		return 0, fmt.Errorf("%w: not a number", ErrInvalidMaxDuty)
	}
	maxAsFloat := float32(maxDuty)
	if math.IsInf(float64(maxAsFloat), 0) {
		return 0, fmt.Errorf("%w: %v is outside single precision range", ErrInvalidMaxDuty, maxDuty)
	}

	scaled := p.AsAbsPercentage() * maxAsFloat
	if float64(scaled) > float64(maxDuty) {
		return 0, fmt.Errorf("%w: %v exceeds %v", ErrDutyOverflow, scaled, maxDuty)
	}

	// maxDuty / maxDuty is 1 for every accepted maxDuty. It is kept so
	// the result is formed by T's own arithmetic.
	return (maxDuty / maxDuty) * T(scaled), nil
}
