package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPattern is returned when a name or code matches no pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

var byName = func() map[string]Pattern {
	m := make(map[string]Pattern, numPatterns)
	for i, e := range table {
		m[strings.ToLower(e.name)] = Pattern(i)
	}
	return m
}()

// Parse looks up a pattern by its name, ignoring case, or by its
// decimal datasheet code.
func Parse(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if p, ok := byName[strings.ToLower(s)]; ok {
		return p, nil
	}
	if code, err := strconv.ParseUint(s, 10, 8); err == nil {
		if p, ok := FromCode(uint8(code)); ok {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

func (p Pattern) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML accepts a pattern name or an integer code.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: pattern must be a name or a code", value.Line)
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

func (p Pattern) MarshalYAML() (interface{}, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
