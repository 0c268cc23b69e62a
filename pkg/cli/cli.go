// Package cli parses command line arguments for the layerkit demo shell and
// drives a line-oriented session against one in-memory layer collection.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config holds settings parsed from command line arguments.
type Config struct {
	ScriptPath string // optional script file with one operation per line; empty reads stdin
	LogLevel   string // log level (debug, info, warn, error)
	Locale     string // BCP 47 tag for uniquefier digit formatting (empty: plain digits)
	MultiEdit  bool   // include the "various" sentinel in name listings
	ShowHelp   bool   // help flag
}

// ParseArgs parses command line arguments into a Config.
// Environment variables supply defaults when the corresponding flag is
// absent: LOG_LEVEL, LAYER_LOCALE and LAYER_MULTI_EDIT.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("layerkit", flag.ContinueOnError)

	config := &Config{}

	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.StringVar(&config.Locale, "locale", "", "BCP 47 tag for name suffix formatting")
	fs.BoolVar(&config.MultiEdit, "multi-edit", false, "include the \"various\" sentinel in name listings")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Environment fallbacks (command line flags take precedence).
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}
	if config.Locale == "" {
		config.Locale = os.Getenv("LAYER_LOCALE")
	}
	if !config.MultiEdit {
		if multiEnv := os.Getenv("LAYER_MULTI_EDIT"); multiEnv != "" {
			config.MultiEdit = multiEnv == "1" || strings.ToLower(multiEnv) == "true"
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if fs.NArg() > 0 {
		config.ScriptPath = fs.Arg(0)
	}

	return config, nil
}

// PrintHelp writes the usage message to stdout.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `layerkit - layer collection shell

Usage:
  layerkit [options] [script-path]

Arguments:
  script-path   file with one layer operation per line (omitted: read stdin)

Operations:
  add [name]                add a layer (blank name gets a generated one)
  clone <index>             insert a clone of the layer before <index>
  activate <name>           make the named layer the single active layer
  hide <name>               hide the named layer (active falls back to default)
  show <name>               make the named layer visible
  lock <name> / unlock <name>
  rename <index> <name>     rename with uniqueness enforcement
  color <index> <colorname> recolor by SVG color name
  remove <index>            remove the layer at <index>
  sort                      sort (default layer stays first)
  list                      print the layer table
  names                     print assignable (visible) layer names
  reset                     reset to a single default layer

Options:
  -l, --log-level <level>   log level: debug, info, warn, error (default: info)
  --locale <tag>            BCP 47 tag for name suffix digits (e.g. de, en-US)
  --multi-edit              prefix name listings with the "various" sentinel
  -h, --help                show this help

Environment Variables:
  LOG_LEVEL=<level>         log level
  LAYER_LOCALE=<tag>        suffix locale
  LAYER_MULTI_EDIT=1        enable multi-edit listings

Examples:
  layerkit ops.txt              run operations from a file
  echo "add Walls" | layerkit   run operations from stdin
  layerkit --locale de ops.txt  German digit grouping in generated suffixes
`)
}
