package cmd

import (
	"log/slog"

	"github.com/Alia5/metagen/internal/codegen/generator"
	"github.com/Alia5/metagen/internal/log"
)

type Check struct {
	Input   string           `arg:"" help:"Metadata file to read"`
	Output  string           `arg:"" help:"Previously generated header to compare against"`
	Codegen generator.Config `embed:""`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return generator.New(c.Codegen, logger, rawLogger).Verify(c.Input, c.Output)
}
