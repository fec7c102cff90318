// Package cmd defines the xidi command-line interface. Commands receive a
// configured slog.Logger via kong's binding mechanism.
package cmd

// LogConfig holds logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"XIDI_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"XIDI_LOG_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a configuration file" env:"XIDI_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Check     Check         `cmd:"" help:"Validate a mapper definitions file and report each mapper's capabilities"`
	Elements  Elements      `cmd:"" help:"List the controller element, actuator, and mapper type vocabulary"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}
