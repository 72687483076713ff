package pattern

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsPercentage(t *testing.T) {
	assert.Equal(t, float32(-0.59), FireMedium.AsPercentage())
	assert.Equal(t, float32(0.81), Aqua.AsPercentage())

	for _, p := range All() {
		want := (float64(p.Code()) - 100) / 100
		assert.InDelta(t, want, p.AsPercentage(), 1e-6, "percentage of %s", p)
	}
}

func TestAsAbsPercentage(t *testing.T) {
	assert.Equal(t, float32(0.495), Color1Larson.AsAbsPercentage())
	assert.Equal(t, float32(0.505), Color1Chase.AsAbsPercentage())

	for _, p := range All() {
		abs := p.AsAbsPercentage()
		want := (float64(p.AsPercentage()) + 1) / 2
		assert.InDelta(t, want, abs, 1e-6, "abs percentage of %s", p)
		assert.GreaterOrEqual(t, abs, float32(0), "%s below 0", p)
		assert.LessOrEqual(t, abs, float32(1), "%s above 1", p)
	}
}

func TestAsPulseWidth(t *testing.T) {
	assert.Equal(t, 1005*time.Microsecond, Rainbow.AsPulseWidth())
	assert.Equal(t, 1495*time.Microsecond, Color1Larson.AsPulseWidth())
	assert.Equal(t, 1505*time.Microsecond, Color1Chase.AsPulseWidth())
	assert.Equal(t, 1995*time.Microsecond, Black.AsPulseWidth())
}

func TestDuty_Uint8(t *testing.T) {
	duty, err := Duty(Color1Larson, uint8(math.MaxUint8))
	require.NoError(t, err)
	assert.Equal(t, uint8(126), duty)
}

func TestDuty_Types(t *testing.T) {
	d16, err := Duty(Black, uint16(1000))
	require.NoError(t, err)
	assert.Equal(t, uint16(995), d16)

	d32, err := Duty(Rainbow, uint32(65535))
	require.NoError(t, err)
	// 0.005 * 65535 = 327.675
	assert.Equal(t, uint32(327), d32)

	dint, err := Duty(Color1Chase, 200)
	require.NoError(t, err)
	assert.Equal(t, 101, dint)

	df, err := Duty(Color1Larson, float32(1))
	require.NoError(t, err)
	assert.Equal(t, float32(0.495), df)

	d64, err := Duty(Aqua, float64(100))
	require.NoError(t, err)
	assert.InDelta(t, 90.5, d64, 1e-4)

	dmax, err := Duty(Black, uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Less(t, dmax, uint64(math.MaxUint64))
}

func TestDuty_NeverExceedsMax(t *testing.T) {
	for _, p := range All() {
		for _, maxDuty := range []uint16{1, 2, 255, 1023, 4095, 65535} {
			d, err := Duty(p, maxDuty)
			require.NoError(t, err)
			assert.LessOrEqual(t, d, maxDuty, "%s at max %d", p, maxDuty)
		}
	}
}

func TestDuty_ZeroMax(t *testing.T) {
	d, err := Duty(Color1Larson, uint8(0))
	assert.ErrorIs(t, err, ErrZeroMaxDuty)
	assert.ErrorIs(t, err, ErrInvalidMaxDuty)
	assert.Equal(t, uint8(0), d)

	f, err := Duty(Color1Larson, float64(0))
	assert.ErrorIs(t, err, ErrZeroMaxDuty)
	assert.Equal(t, float64(0), f)
	assert.False(t, math.IsNaN(f))
}

func TestDuty_InvalidMax(t *testing.T) {
	tests := []struct {
		name    string
		maxDuty float64
	}{
		{"negative", -255},
		{"nan", math.NaN()},
		{"infinite", math.Inf(1)},
		{"beyond float32", math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Duty(Aqua, tt.maxDuty)
			assert.ErrorIs(t, err, ErrInvalidMaxDuty)
			assert.NotErrorIs(t, err, ErrZeroMaxDuty)
			assert.Equal(t, float64(0), d)
		})
	}

	d, err := Duty(Aqua, int8(-100))
	assert.ErrorIs(t, err, ErrInvalidMaxDuty)
	assert.Equal(t, int8(0), d)
}
