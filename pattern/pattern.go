// Package pattern holds the output modes of the REV 11-1105 LED driver
// together with the conversions a PWM output needs to select them.
//
// The codes are transcribed from the color table of the driver's user
// manual. They are not meant to be written to a PWM output directly:
// convert them with AsPercentage, AsAbsPercentage or Duty first.
package pattern

import "strconv"

// Pattern is one selectable output mode of the driver.
type Pattern int

const (
	Rainbow Pattern = iota
	RainbowParty
	RainbowOcean
	RainbowLava
	RainbowForest
	RainbowGlitter
	Confetti
	RedShot
	BlueShot
	WhiteShot
	SinelonRainbow
	SinelonParty
	SinelonOcean
	SinelonLava
	SinelonForest
	BpmRainbow
	BpmOcean
	BpmLava
	BpmForest
	FireMedium
	FireLarge
	TwinklesRainbow
	TwinklesParty
	TwinklesOcean
	TwinklesLava
	TwinklesForest
	WavesRainbow
	WavesParty
	WavesOcean
	WavesLava
	WavesForest
	LarsonRed
	LarsonGray
	ChaseRed
	ChaseBlue
	ChaseGray
	HeartbeatRed
	HeartbeatBlue
	HeartbeatWhite
	HeartbeatGray
	BreathRed
	BreathBlue
	BreathGray
	StrobeBlue
	StrobeGold
	StrobeWhite
	Color1BlendToBlack
	Color1Larson
	Color1Chase
	Color1HeartbeatSlow
	Color1HeartbeatMedium
	Color1HeartbeatFast
	Color1BreathSlow
	Color1BreathFast
	Color1Shot
	Color1Strobe
	Color2BlendToBlack
	Color2Larson
	Color2Chase
	Color2HeartbeatSlow
	Color2HeartbeatMedium
	Color2HeartbeatFast
	Color2BreathSlow
	Color2BreathFast
	Color2Shot
	Color2Strobe
	Sparkle1On2
	Sparkle2On1
	Gradient1And2
	Bpm1And2
	EndBlend1And2
	EndBlend
	Color1And2NoBlend
	Twinkle1And2
	Waves1And2
	Sinelon1And2
	HotPink
	DarkRed
	Red
	RedOrange
	Orange
	Gold
	Yellow
	LawnGreen
	Lime
	DarkGreen
	Green
	BlueGreen
	Aqua
	SkyBlue
	DarkBlue
	Blue
	BlueViolet
	Violet
	White
	Gray
	DarkGray
	Black

	numPatterns
)

// Category is the section of the datasheet color table a pattern is
// listed in.
type Category int

const (
	CategoryFixedPalette Category = iota
	CategoryFixedPaletteColor
	CategoryColor1
	CategoryColor2
	CategoryColor1And2
	CategorySolidColor
)

var categoryNames = [...]string{
	CategoryFixedPalette:      "Fixed Palette",
	CategoryFixedPaletteColor: "Fixed Palette Color",
	CategoryColor1:            "Color 1",
	CategoryColor2:            "Color 2",
	CategoryColor1And2:        "Color 1 and 2",
	CategorySolidColor:        "Solid Color",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

type entry struct {
	name     string
	code     uint8
	category Category
}

// table maps every Pattern to its datasheet code. Codes are load
// bearing and must never be renumbered.
var table = [numPatterns]entry{
	Rainbow:               {"Rainbow", 1, CategoryFixedPalette},
	RainbowParty:          {"RainbowParty", 3, CategoryFixedPalette},
	RainbowOcean:          {"RainbowOcean", 5, CategoryFixedPalette},
	RainbowLava:           {"RainbowLava", 7, CategoryFixedPalette},
	RainbowForest:         {"RainbowForest", 9, CategoryFixedPalette},
	RainbowGlitter:        {"RainbowGlitter", 11, CategoryFixedPalette},
	Confetti:              {"Confetti", 13, CategoryFixedPalette},
	RedShot:               {"RedShot", 15, CategoryFixedPalette},
	BlueShot:              {"BlueShot", 17, CategoryFixedPalette},
	WhiteShot:             {"WhiteShot", 19, CategoryFixedPalette},
	SinelonRainbow:        {"SinelonRainbow", 21, CategoryFixedPalette},
	SinelonParty:          {"SinelonParty", 23, CategoryFixedPalette},
	SinelonOcean:          {"SinelonOcean", 25, CategoryFixedPalette},
	SinelonLava:           {"SinelonLava", 27, CategoryFixedPalette},
	SinelonForest:         {"SinelonForest", 29, CategoryFixedPalette},
	BpmRainbow:            {"BpmRainbow", 31, CategoryFixedPalette},
	BpmOcean:              {"BpmOcean", 35, CategoryFixedPalette},
	BpmLava:               {"BpmLava", 37, CategoryFixedPalette},
	BpmForest:             {"BpmForest", 39, CategoryFixedPalette},
	FireMedium:            {"FireMedium", 41, CategoryFixedPalette},
	FireLarge:             {"FireLarge", 43, CategoryFixedPalette},
	TwinklesRainbow:       {"TwinklesRainbow", 45, CategoryFixedPalette},
	TwinklesParty:         {"TwinklesParty", 47, CategoryFixedPalette},
	TwinklesOcean:         {"TwinklesOcean", 49, CategoryFixedPalette},
	TwinklesLava:          {"TwinklesLava", 51, CategoryFixedPalette},
	TwinklesForest:        {"TwinklesForest", 53, CategoryFixedPalette},
	WavesRainbow:          {"WavesRainbow", 55, CategoryFixedPalette},
	WavesParty:            {"WavesParty", 57, CategoryFixedPalette},
	WavesOcean:            {"WavesOcean", 59, CategoryFixedPalette},
	WavesLava:             {"WavesLava", 61, CategoryFixedPalette},
	WavesForest:           {"WavesForest", 63, CategoryFixedPalette},
	LarsonRed:             {"LarsonRed", 65, CategoryFixedPaletteColor},
	LarsonGray:            {"LarsonGray", 67, CategoryFixedPaletteColor},
	ChaseRed:              {"ChaseRed", 69, CategoryFixedPaletteColor},
	ChaseBlue:             {"ChaseBlue", 71, CategoryFixedPaletteColor},
	ChaseGray:             {"ChaseGray", 73, CategoryFixedPaletteColor},
	HeartbeatRed:          {"HeartbeatRed", 75, CategoryFixedPaletteColor},
	HeartbeatBlue:         {"HeartbeatBlue", 77, CategoryFixedPaletteColor},
	HeartbeatWhite:        {"HeartbeatWhite", 79, CategoryFixedPaletteColor},
	HeartbeatGray:         {"HeartbeatGray", 81, CategoryFixedPaletteColor},
	BreathRed:             {"BreathRed", 83, CategoryFixedPaletteColor},
	BreathBlue:            {"BreathBlue", 85, CategoryFixedPaletteColor},
	BreathGray:            {"BreathGray", 87, CategoryFixedPaletteColor},
	StrobeBlue:            {"StrobeBlue", 91, CategoryFixedPaletteColor},
	StrobeGold:            {"StrobeGold", 93, CategoryFixedPaletteColor},
	StrobeWhite:           {"StrobeWhite", 95, CategoryFixedPaletteColor},
	Color1BlendToBlack:    {"Color1BlendToBlack", 97, CategoryColor1},
	Color1Larson:          {"Color1Larson", 99, CategoryColor1},
	Color1Chase:           {"Color1Chase", 101, CategoryColor1},
	Color1HeartbeatSlow:   {"Color1HeartbeatSlow", 103, CategoryColor1},
	Color1HeartbeatMedium: {"Color1HeartbeatMedium", 105, CategoryColor1},
	Color1HeartbeatFast:   {"Color1HeartbeatFast", 107, CategoryColor1},
	Color1BreathSlow:      {"Color1BreathSlow", 109, CategoryColor1},
	Color1BreathFast:      {"Color1BreathFast", 111, CategoryColor1},
	Color1Shot:            {"Color1Shot", 113, CategoryColor1},
	Color1Strobe:          {"Color1Strobe", 115, CategoryColor1},
	Color2BlendToBlack:    {"Color2BlendToBlack", 117, CategoryColor2},
	Color2Larson:          {"Color2Larson", 119, CategoryColor2},
	Color2Chase:           {"Color2Chase", 121, CategoryColor2},
	Color2HeartbeatSlow:   {"Color2HeartbeatSlow", 123, CategoryColor2},
	Color2HeartbeatMedium: {"Color2HeartbeatMedium", 125, CategoryColor2},
	Color2HeartbeatFast:   {"Color2HeartbeatFast", 127, CategoryColor2},
	Color2BreathSlow:      {"Color2BreathSlow", 129, CategoryColor2},
	Color2BreathFast:      {"Color2BreathFast", 131, CategoryColor2},
	Color2Shot:            {"Color2Shot", 133, CategoryColor2},
	Color2Strobe:          {"Color2Strobe", 135, CategoryColor2},
	Sparkle1On2:           {"Sparkle1On2", 137, CategoryColor1And2},
	Sparkle2On1:           {"Sparkle2On1", 139, CategoryColor1And2},
	Gradient1And2:         {"Gradient1And2", 141, CategoryColor1And2},
	Bpm1And2:              {"Bpm1And2", 143, CategoryColor1And2},
	EndBlend1And2:         {"EndBlend1And2", 145, CategoryColor1And2},
	EndBlend:              {"EndBlend", 147, CategoryColor1And2},
	Color1And2NoBlend:     {"Color1And2NoBlend", 149, CategoryColor1And2},
	Twinkle1And2:          {"Twinkle1And2", 151, CategoryColor1And2},
	Waves1And2:            {"Waves1And2", 153, CategoryColor1And2},
	Sinelon1And2:          {"Sinelon1And2", 155, CategoryColor1And2},
	HotPink:               {"HotPink", 157, CategorySolidColor},
	DarkRed:               {"DarkRed", 159, CategorySolidColor},
	Red:                   {"Red", 161, CategorySolidColor},
	RedOrange:             {"RedOrange", 163, CategorySolidColor},
	Orange:                {"Orange", 165, CategorySolidColor},
	Gold:                  {"Gold", 167, CategorySolidColor},
	Yellow:                {"Yellow", 169, CategorySolidColor},
	LawnGreen:             {"LawnGreen", 171, CategorySolidColor},
	Lime:                  {"Lime", 173, CategorySolidColor},
	DarkGreen:             {"DarkGreen", 175, CategorySolidColor},
	Green:                 {"Green", 177, CategorySolidColor},
	BlueGreen:             {"BlueGreen", 179, CategorySolidColor},
	Aqua:                  {"Aqua", 181, CategorySolidColor},
	SkyBlue:               {"SkyBlue", 183, CategorySolidColor},
	DarkBlue:              {"DarkBlue", 185, CategorySolidColor},
	Blue:                  {"Blue", 187, CategorySolidColor},
	BlueViolet:            {"BlueViolet", 189, CategorySolidColor},
	Violet:                {"Violet", 191, CategorySolidColor},
	White:                 {"White", 193, CategorySolidColor},
	Gray:                  {"Gray", 195, CategorySolidColor},
	DarkGray:              {"DarkGray", 197, CategorySolidColor},
	Black:                 {"Black", 199, CategorySolidColor},
}

// Valid reports whether p is one of the defined patterns.
func (p Pattern) Valid() bool {
	return p >= 0 && p < numPatterns
}

// Code returns the datasheet code of p, a value in [1,199]. Undefined
// patterns map to 0.
func (p Pattern) Code() uint8 {
	if !p.Valid() {
		return 0
	}
	return table[p].code
}

func (p Pattern) String() string {
	if !p.Valid() {
		return "Pattern(" + strconv.Itoa(int(p)) + ")"
	}
	return table[p].name
}

// Category returns the datasheet section p belongs to.
func (p Pattern) Category() Category {
	if !p.Valid() {
		return Category(-1)
	}
	return table[p].category
}

// All returns every defined pattern in datasheet order.
func All() []Pattern {
	ret := make([]Pattern, numPatterns)
	for i := range ret {
		ret[i] = Pattern(i)
	}
	return ret
}

// FromCode returns the pattern transcribed with the given code.
func FromCode(code uint8) (Pattern, bool) {
	p, ok := byCode[code]
	return p, ok
}

var byCode = func() map[uint8]Pattern {
	m := make(map[uint8]Pattern, numPatterns)
	for i, e := range table {
		m[e.code] = Pattern(i)
	}
	return m
}()

// Local Variables:
// compile-command: "cd .. && go build"
// End:
