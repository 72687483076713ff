package config

import "lautenbacher.net/blinkin/pattern"

// RuntimeConfig defines the subset of the configuration that can be
// modified at runtime through the web API. Logging stays fixed for the
// lifetime of the process.
type RuntimeConfig struct {
	Output  OutputConfig               `yaml:"Output" json:"Output"`
	Presets map[string]pattern.Pattern `yaml:"Presets" json:"Presets"`
}
