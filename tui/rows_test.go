package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lautenbacher.net/blinkin/config"
	"lautenbacher.net/blinkin/pattern"
)

func TestRow(t *testing.T) {
	out := config.OutputConfig{MaxDuty: 255, Type: config.Uint8}

	row, err := Row(pattern.Color1Larson, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Color1Larson", "Color 1", "99", "-0.01", "0.495", "1495µs", "126"}, row)

	row, err = Row(pattern.FireMedium, out)
	require.NoError(t, err)
	assert.Equal(t, "-0.59", row[3])

	row, err = Row(pattern.Aqua, out)
	require.NoError(t, err)
	assert.Equal(t, "+0.81", row[3])
}

func TestRows(t *testing.T) {
	rows, err := Rows(config.OutputConfig{MaxDuty: 1, Type: config.Float64})
	require.NoError(t, err)
	require.Len(t, rows, len(pattern.All()))
	for _, row := range rows {
		assert.Len(t, row, len(Header))
	}
	assert.Equal(t, "Rainbow", rows[0][0])
	assert.Equal(t, "Black", rows[len(rows)-1][0])

	_, err = Rows(config.OutputConfig{MaxDuty: 0, Type: config.Uint8})
	assert.ErrorIs(t, err, pattern.ErrZeroMaxDuty)
}

func TestSwatch(t *testing.T) {
	for _, p := range pattern.All() {
		_, ok := Swatch(p)
		assert.Equal(t, p.Category() == pattern.CategorySolidColor, ok, "swatch for %s", p)
	}

	c, ok := Swatch(pattern.Red)
	require.True(t, ok)
	r, g, b := c.RGB255()
	assert.Equal(t, []uint8{255, 0, 0}, []uint8{r, g, b})

	color, ok := swatchColor(pattern.Lime)
	require.True(t, ok)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), color)

	_, ok = swatchColor(pattern.Rainbow)
	assert.False(t, ok)
}

func TestBrowser_SetOutputValidates(t *testing.T) {
	b := NewBrowser(config.OutputConfig{MaxDuty: 255, Type: config.Uint8})
	assert.Error(t, b.SetOutput(config.OutputConfig{MaxDuty: 0, Type: config.Uint8}))
	require.NoError(t, b.SetOutput(config.OutputConfig{MaxDuty: 1023, Type: config.Uint16}))
	assert.Equal(t, float64(1023), b.out.MaxDuty)
	assert.Contains(t, b.introText(pattern.Gold), "Gold")
}
