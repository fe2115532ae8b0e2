// Package config provides configuration management for the go-signalcontent
// command line tool.
//
// Values come from, in increasing precedence: the defaults in Defaults(), the
// yaml file at $HOME/.go-signalcontent/config.yaml (or the file named by
// CfgFile), environment variables prefixed SIGCONTENT_ (for example
// SIGCONTENT_DECODE_OUTPUT=json), and command line flags bound by the caller.
//
// The decoder library itself takes no configuration. The highest protocol
// version it accepts is fixed at build time.
package config
