package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"lautenbacher.net/blinkin/config"
	"lautenbacher.net/blinkin/pattern"
)

// Header names the columns produced by Rows.
var Header = []string{"Pattern", "Category", "Code", "Percent", "Abs", "Pulse", "Duty"}

// approximate sRGB of the solid color patterns, used for the swatch
// column only
var swatches = map[pattern.Pattern]string{
	pattern.HotPink:    "#ff69b4",
	pattern.DarkRed:    "#8b0000",
	pattern.Red:        "#ff0000",
	pattern.RedOrange:  "#ff4500",
	pattern.Orange:     "#ffa500",
	pattern.Gold:       "#ffd700",
	pattern.Yellow:     "#ffff00",
	pattern.LawnGreen:  "#7cfc00",
	pattern.Lime:       "#00ff00",
	pattern.DarkGreen:  "#006400",
	pattern.Green:      "#008000",
	pattern.BlueGreen:  "#0d98ba",
	pattern.Aqua:       "#00ffff",
	pattern.SkyBlue:    "#87ceeb",
	pattern.DarkBlue:   "#00008b",
	pattern.Blue:       "#0000ff",
	pattern.BlueViolet: "#8a2be2",
	pattern.Violet:     "#ee82ee",
	pattern.White:      "#ffffff",
	pattern.Gray:       "#808080",
	pattern.DarkGray:   "#404040",
	pattern.Black:      "#000000",
}

// Swatch returns the display color of a solid color pattern.
func Swatch(p pattern.Pattern) (colorful.Color, bool) {
	hex, ok := swatches[p]
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func swatchColor(p pattern.Pattern) (tcell.Color, bool) {
	c, ok := Swatch(p)
	if !ok {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

// Row renders every conversion of p for out, matching Header.
func Row(p pattern.Pattern, out config.OutputConfig) ([]string, error) {
	duty, err := out.Duty(p)
	if err != nil {
		return nil, err
	}
	return []string{
		p.String(),
		p.Category().String(),
		fmt.Sprintf("%d", p.Code()),
		fmt.Sprintf("%+.2f", p.AsPercentage()),
		fmt.Sprintf("%.3f", p.AsAbsPercentage()),
		fmt.Sprintf("%dµs", p.AsPulseWidth().Microseconds()),
		fmt.Sprintf("%g", duty),
	}, nil
}

// Rows renders the whole pattern table in datasheet order.
func Rows(out config.OutputConfig) ([][]string, error) {
	all := pattern.All()
	rows := make([][]string, 0, len(all))
	for _, p := range all {
		row, err := Row(p, out)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", p, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
