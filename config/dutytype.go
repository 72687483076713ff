package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"lautenbacher.net/blinkin/pattern"
)

// DutyType names the numeric type a PWM output takes its duty in.
// Scaling happens in that type so integer outputs see the same
// truncation a caller using pattern.Duty directly would get.
type DutyType string

const (
	Uint8   DutyType = "uint8"
	Uint16  DutyType = "uint16"
	Uint32  DutyType = "uint32"
	Int     DutyType = "int"
	Float32 DutyType = "float32"
	Float64 DutyType = "float64"
)

var dutyTypeMax = map[DutyType]float64{
	Uint8:   math.MaxUint8,
	Uint16:  math.MaxUint16,
	Uint32:  math.MaxUint32,
	Int:     math.MaxInt32,
	Float32: math.MaxFloat32,
	Float64: math.MaxFloat32,
}

func (t DutyType) normalized() DutyType {
	return DutyType(strings.ToLower(strings.TrimSpace(string(t))))
}

func (t DutyType) maxValue() (float64, bool) {
	v, ok := dutyTypeMax[t.normalized()]
	return v, ok
}

func (t DutyType) isInteger() bool {
	switch t.normalized() {
	case Float32, Float64:
		return false
	}
	return true
}

func dutyTypeNames() []string {
	names := make([]string, 0, len(dutyTypeMax))
	for t := range dutyTypeMax {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// Duty converts maxDuty to t, scales p with pattern.Duty and widens
// the result to float64.
func (t DutyType) Duty(p pattern.Pattern, maxDuty float64) (float64, error) {
	switch t.normalized() {
	case Uint8:
		return scale(p, uint8(maxDuty))
	case Uint16:
		return scale(p, uint16(maxDuty))
	case Uint32:
		return scale(p, uint32(maxDuty))
	case Int:
		return scale(p, int(maxDuty))
	case Float32:
		return scale(p, float32(maxDuty))
	case Float64:
		return scale(p, maxDuty)
	}
	return 0, fmt.Errorf("unknown duty type %q", string(t))
}

func scale[T pattern.Number](p pattern.Pattern, maxDuty T) (float64, error) {
	d, err := pattern.Duty(p, maxDuty)
	return float64(d), err
}
