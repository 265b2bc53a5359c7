// Package config defines the root command line of metagen.
package config

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Alia5/metagen/internal/cmd"
	"github.com/Alia5/metagen/internal/log"
)

type CLI struct {
	Config  string           `help:"Configuration file (JSON, YAML or TOML)" env:"METAGEN_CONFIG"`
	Version kong.VersionFlag `help:"Print version and exit"`
	Log     log.Config       `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate C structs from a metadata file"`
	Watch     cmd.Watch         `cmd:"" help:"Regenerate whenever the metadata file changes"`
	Check     cmd.Check         `cmd:"" help:"Fail if a generated header is out of date"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// StdoutBusy reports whether the selected command writes generated code to stdout.
func (c *CLI) StdoutBusy(command string) bool {
	return strings.HasPrefix(command, "generate") && c.Generate.WritesStdout()
}
