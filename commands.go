package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-i2p/go-signalcontent/lib/config"
	"github.com/go-i2p/go-signalcontent/lib/content"
	"github.com/go-i2p/go-signalcontent/lib/util"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

// cli is the human-facing logger for command progress. The library packages
// log through github.com/go-i2p/logger, which follows DEBUG_I2P.
var cli = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "go-signalcontent",
		Short:         "Decode serialized Signal content envelopes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(); err != nil {
				return err
			}
			return configureLogging(cmd, config.CurrentConfig().Log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&config.CfgFile, "config", "", "config file (default $HOME/"+config.BaseDirName+"/config.yaml)")
	pf.String("log-level", "", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")
	pf.String("input", "", "input encoding (raw, hex, base64)")
	pf.String("output", "", "output format (yaml, json, text)")
	pf.Bool("color", true, "style text output")
	pf.Bool("diagnostics", true, "include dropped entries in the output")

	for key, flag := range map[string]string{
		"log.level":               "log-level",
		"log.format":              "log-format",
		"decode.input":            "input",
		"decode.output":           "output",
		"decode.color":            "color",
		"decode.show_diagnostics": "diagnostics",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			util.Panicf("bind flag %s: %v", flag, err)
		}
	}

	root.AddCommand(decodeCmd(), inspectCmd(), versionCmd())
	return root
}

func configureLogging(cmd *cobra.Command, cfg config.LogDefaults) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	cli.SetLevel(level)
	cli.SetOutput(cmd.ErrOrStderr())
	if cfg.Format == "json" {
		cli.SetFormatter(&logrus.JSONFormatter{})
	} else {
		cli.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return nil
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode an envelope and print the classified content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, false)
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Print envelope metadata, the classified family and diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, true)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and the highest supported protocol version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "go-signalcontent %s\nmax data message protocol version: %d\n",
				Version, content.MaxSupportedVersion)
			return err
		},
	}
}

func runDecode(cmd *cobra.Command, args []string, metadataOnly bool) error {
	cfg := config.CurrentConfig().Decode

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd.InOrStdin(), path, cfg.Input)
	if err != nil {
		return err
	}
	cli.WithFields(logrus.Fields{
		"path":   displayPath(path),
		"input":  cfg.Input,
		"length": len(data),
	}).Debug("read envelope")

	c, err := content.Decode(data)
	if err != nil {
		return err
	}
	if c == nil {
		cli.Info("envelope carries no recognised content")
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "family: none")
		return err
	}

	v := newContentView(c, cfg.ShowDiagnostics)
	if metadataOnly {
		v = v.metadataOnly()
	}
	return render(cmd.OutOrStdout(), v, cfg.Output, cfg.Color)
}

// errorKind names the failure class printed before the error message.
func errorKind(err error) string {
	switch {
	case errors.Is(err, content.ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, content.ErrMalformedWire):
		return "malformed_wire"
	case errors.Is(err, content.ErrInvalidKey):
		return "invalid_key"
	case errors.Is(err, content.ErrInvalidMessage):
		return "invalid_message"
	case errors.Is(err, errInput):
		return "input"
	default:
		return "error"
	}
}

func exitCode(err error) int {
	switch errorKind(err) {
	case "error", "input":
		return 1
	default:
		return 2
	}
}
