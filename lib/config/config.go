package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"

	"github.com/go-i2p/go-signalcontent/lib/util"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const (
	BaseDirName = ".go-signalcontent"
	EnvPrefix   = "SIGCONTENT"
)

// InitConfig loads defaults, the config file and the environment into viper.
// A missing default config file is created; a missing explicit one is an
// error.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := handleConfigFile(); err != nil {
		return err
	}
	return Validate(CurrentConfig())
}

func setDefaults() {
	d := Defaults()

	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)

	viper.SetDefault("decode.input", d.Decode.Input)
	viper.SetDefault("decode.output", d.Decode.Output)
	viper.SetDefault("decode.show_diagnostics", d.Decode.ShowDiagnostics)
	viper.SetDefault("decode.color", d.Decode.Color)
}

// CurrentConfig reads the effective configuration back out of viper, using
// the same keys setDefaults writes.
func CurrentConfig() ConfigDefaults {
	return ConfigDefaults{
		Log: LogDefaults{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
		Decode: DecodeDefaults{
			Input:           viper.GetString("decode.input"),
			Output:          viper.GetString("decode.output"),
			ShowDiagnostics: viper.GetBool("decode.show_diagnostics"),
			Color:           viper.GetBool("decode.color"),
		},
	}
}

func createDefaultConfig(defaultConfigDir string) error {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		return oops.Wrapf(err, "could not create config directory %s", defaultConfigDir)
	}
	if err := viper.SafeWriteConfigAs(defaultConfigFile); err != nil {
		return oops.Wrapf(err, "could not write default config file %s", defaultConfigFile)
	}
	log.WithField("path", defaultConfigFile).Debug("created_default_config")
	return nil
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("using_config_file")
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	switch {
	case errors.As(err, &notFound) && CfgFile == "":
		return createDefaultConfig(BuildDirPath())
	case CfgFile != "" && errors.Is(err, os.ErrNotExist):
		return oops.Wrapf(err, "config file %s is not found", CfgFile)
	default:
		return oops.Wrapf(err, "error reading config file")
	}
}

func BuildDirPath() string {
	return filepath.Join(util.UserHome(), BaseDirName)
}
