package cmd

import (
	"log/slog"

	"github.com/Alia5/metagen/internal/codegen/generator"
	"github.com/Alia5/metagen/internal/log"
)

type Generate struct {
	Input   string           `arg:"" help:"Metadata file to read ('-' for stdin)"`
	Output  string           `arg:"" optional:"" default:"data.h" help:"Header file to write ('-' for stdout)"`
	Codegen generator.Config `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Debug("Starting code generation", "input", g.Input, "output", g.Output)
	return generator.New(g.Codegen, logger, rawLogger).GenerateFile(g.Input, g.Output)
}

// WritesStdout reports whether generated code goes to stdout.
func (g *Generate) WritesStdout() bool {
	return g.Output == generator.StdStream
}
