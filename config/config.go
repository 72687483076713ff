package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"lautenbacher.net/blinkin/pattern"
)

const CONFILE = "config.yml"

// ErrUnknownPreset is returned when a preset name is not configured.
var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Logging LoggingConfig `yaml:"Logging"`
	Output  OutputConfig  `yaml:"Output"`
	// Named states of the consuming application, each bound to the
	// pattern the driver should show for it.
	Presets map[string]pattern.Pattern `yaml:"Presets"`
}

type LoggingConfig struct {
	Level  string `yaml:"Level"`
	Format string `yaml:"Format"`
	File   string `yaml:"File"`
}

// OutputConfig describes the PWM output that receives the duty value.
type OutputConfig struct {
	MaxDuty float64  `yaml:"MaxDuty" json:"MaxDuty"`
	Type    DutyType `yaml:"Type" json:"Type"`
}

// Default returns the configuration used when no config file exists:
// an 8 bit output and no presets.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "INFO", Format: "text"},
		Output:  OutputConfig{MaxDuty: math.MaxUint8, Type: Uint8},
		Presets: map[string]pattern.Pattern{},
	}
}

// ReadConfig reads and validates the config file at cfile. Missing
// Logging and Output values are filled from Default.
func ReadConfig(cfile string) (*Config, error) {
	f, err := os.Open(cfile)
	if err != nil {
		return nil, fmt.Errorf("can't open config file %s: %w", cfile, err)
	}
	defer f.Close()

	conf := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil {
		return nil, fmt.Errorf("can't decode config file %s: %w", cfile, err)
	}
	if conf.Presets == nil {
		conf.Presets = map[string]pattern.Pattern{}
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cfile, err)
	}
	return conf, nil
}

// WriteConfig stores conf as YAML at cfile.
func WriteConfig(cfile string, conf *Config) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("can't encode config: %w", err)
	}
	if err := os.WriteFile(cfile, data, 0o644); err != nil {
		return fmt.Errorf("can't write config file %s: %w", cfile, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("Logging.Level %q must be one of DEBUG, INFO, WARN, ERROR", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("Logging.Format %q must be text or json", c.Logging.Format)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	for name, p := range c.Presets {
		if strings.TrimSpace(name) == "" {
			return errors.New("preset names must not be empty")
		}
		if !p.Valid() {
			return fmt.Errorf("preset %q has an unknown pattern", name)
		}
	}
	return nil
}

func (o OutputConfig) Validate() error {
	upper, ok := o.Type.maxValue()
	if !ok {
		return fmt.Errorf("Output.Type %q must be one of %s", o.Type, strings.Join(dutyTypeNames(), ", "))
	}
	if math.IsNaN(o.MaxDuty) || o.MaxDuty <= 0 || o.MaxDuty > upper {
		return fmt.Errorf("Output.MaxDuty %v must be between 1 and %v for %s", o.MaxDuty, upper, o.Type)
	}
	if o.Type.isInteger() && o.MaxDuty != math.Trunc(o.MaxDuty) {
		return fmt.Errorf("Output.MaxDuty %v must be a whole number for %s", o.MaxDuty, o.Type)
	}
	return nil
}

// PresetNames returns the configured preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePreset returns the pattern of the named preset and its duty
// scaled for the configured output.
func (c *Config) ResolvePreset(name string) (pattern.Pattern, float64, error) {
	p, ok := c.Presets[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	duty, err := c.Output.Duty(p)
	if err != nil {
		return p, 0, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, duty, nil
}

// Duty scales p for this output.
func (o OutputConfig) Duty(p pattern.Pattern) (float64, error) {
	return o.Type.Duty(p, o.MaxDuty)
}

// Local Variables:
// compile-command: "cd .. && go build"
// End:
