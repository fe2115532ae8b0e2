package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsRoundTripThroughViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	setDefaults()

	assert.Equal(t, Defaults(), CurrentConfig())
	assert.NoError(t, Validate(CurrentConfig()))
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigDefaults)
		key    string
	}{
		{"log level", func(c *ConfigDefaults) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *ConfigDefaults) { c.Log.Format = "xml" }, "log.format"},
		{"input", func(c *ConfigDefaults) { c.Decode.Input = "base32" }, "decode.input"},
		{"output", func(c *ConfigDefaults) { c.Decode.Output = "toml" }, "decode.output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestValidateAcceptsEveryListedFormat(t *testing.T) {
	for _, in := range InputFormats {
		for _, out := range OutputFormats {
			cfg := Defaults()
			cfg.Decode.Input = in
			cfg.Decode.Output = out
			assert.NoError(t, Validate(cfg), "%s -> %s", in, out)
		}
	}
}

func TestInitConfigReadsExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "decode:\n  input: hex\n  output: json\n  color: false\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	CfgFile = path
	defer func() { CfgFile = "" }()

	require.NoError(t, InitConfig())
	cfg := CurrentConfig()
	assert.Equal(t, "hex", cfg.Decode.Input)
	assert.Equal(t, "json", cfg.Decode.Output)
	assert.False(t, cfg.Decode.Color)
	assert.True(t, cfg.Decode.ShowDiagnostics)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestInitConfigRejectsInvalidFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode:\n  output: toml\n"), 0o600))

	CfgFile = path
	defer func() { CfgFile = "" }()

	err := InitConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode.output")
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	CfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	defer func() { CfgFile = "" }()

	assert.Error(t, InitConfig())
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	require.NoError(t, InitConfig())
	_, err := os.Stat(filepath.Join(home, BaseDirName, "config.yaml"))
	assert.NoError(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("SIGCONTENT_DECODE_OUTPUT", "text")
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, InitConfig())

	assert.Equal(t, "text", CurrentConfig().Decode.Output)
}
