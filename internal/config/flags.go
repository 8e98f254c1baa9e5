// Package config parses the command line.
package config

import (
	"flag"
	"fmt"
)

// Config holds the command line options.
type Config struct {
	SettingsPath string
	Headless     bool
	ShowVersion  bool
}

// ParseFlags parses args (without the program name) into a Config.
func ParseFlags(name string, args []string) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	settingsPath := flags.String("config", "", "Path to the settings file (default: next to the executable)")
	headless := flags.Bool("headless", false, "Run without the interactive interface")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	return &Config{
		SettingsPath: *settingsPath,
		Headless:     *headless,
		ShowVersion:  *showVersion,
	}, nil
}
