package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "lautenbacher.net/blinkin/config"
	"lautenbacher.net/blinkin/logging"
	p "lautenbacher.net/blinkin/pattern"
)

const testConfig = `
Logging:
  Level: "WARN"
  Format: "text"
Output:
  MaxDuty: 255
  Type: uint8
Presets:
  idle: Color1Larson
`

func writeConfig(t *testing.T, data string) string {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(data), 0o644))
	return configFile
}

func runWith(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableColor()
	opts, err := parseFlags(args)
	require.NoError(t, err)
	var out bytes.Buffer
	err = run(context.Background(), opts, &out)
	t.Cleanup(func() { _ = logging.Close() })
	return out.String(), err
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-pattern", "Aqua", "-max", "1023", "-type", "uint16"})
	require.NoError(t, err)
	assert.Equal(t, "Aqua", opts.pattern)
	assert.Equal(t, float64(1023), opts.maxDuty)
	assert.Equal(t, "uint16", opts.dutyType)
	assert.Equal(t, c.CONFILE, opts.configFile)

	_, err = parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestRun_ListIsDefault(t *testing.T) {
	out, err := runWith(t, "-config", writeConfig(t, testConfig))
	require.NoError(t, err)
	for _, pat := range p.All() {
		assert.Contains(t, out, pat.String())
	}
	assert.Contains(t, out, "Duty")
}

func TestRun_Pattern(t *testing.T) {
	out, err := runWith(t, "-config", writeConfig(t, testConfig), "-pattern", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "Color1Larson")
	assert.Contains(t, out, "0.495")
	assert.Contains(t, out, "126")
	assert.Contains(t, out, "1495µs")

	_, err = runWith(t, "-config", writeConfig(t, testConfig), "-pattern", "Purple")
	assert.ErrorIs(t, err, p.ErrUnknownPattern)
}

func TestRun_OverrideOutput(t *testing.T) {
	out, err := runWith(t, "-config", writeConfig(t, testConfig), "-pattern", "Black", "-max", "1000", "-type", "uint16")
	require.NoError(t, err)
	assert.Contains(t, out, "995")
	assert.Contains(t, out, "uint16 max 1000")

	_, err = runWith(t, "-config", writeConfig(t, testConfig), "-pattern", "Black", "-max", "-5")
	assert.Error(t, err)
}

func TestRun_Preset(t *testing.T) {
	out, err := runWith(t, "-config", writeConfig(t, testConfig), "-preset", "idle")
	require.NoError(t, err)
	assert.Contains(t, out, "Color1Larson")

	_, err = runWith(t, "-config", writeConfig(t, testConfig), "-preset", "nope")
	assert.ErrorIs(t, err, c.ErrUnknownPreset)
}

func TestRun_ConfigFile(t *testing.T) {
	_, err := runWith(t, "-config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist, "an explicit config file must exist")

	_, err = runWith(t, "-config", writeConfig(t, "Output:\n  MaxDuty: 0\n"))
	assert.Error(t, err)
}

func TestLoadConfig_DefaultMissing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	conf, err := loadConfig(options{configFile: c.CONFILE})
	require.NoError(t, err)
	assert.Equal(t, c.Default(), conf)
}

func TestWatchAndServe_StopsOnCancel(t *testing.T) {
	configFile := writeConfig(t, testConfig)
	require.NoError(t, logging.Init("ERROR", "text", "", false))
	defer logging.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err := watchAndServe(ctx, options{configFile: configFile, watch: true, serve: "127.0.0.1:0"})
	assert.NoError(t, err)
}
