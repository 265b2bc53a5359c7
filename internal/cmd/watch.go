package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/metagen/internal/codegen/generator"
	"github.com/Alia5/metagen/internal/log"
	"github.com/Alia5/metagen/internal/watch"
)

type Watch struct {
	Input    string           `arg:"" help:"Metadata file to watch"`
	Output   string           `arg:"" optional:"" default:"data.h" help:"Header file to rewrite on change"`
	Debounce time.Duration    `help:"Quiet period after the last change before regenerating" default:"200ms" env:"METAGEN_WATCH_DEBOUNCE"`
	Codegen  generator.Config `embed:""`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Watch(ctx, logger, rawLogger)
}

func (w *Watch) Watch(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	if w.Input == generator.StdStream || w.Output == generator.StdStream {
		return errors.New("watch needs real files for input and output")
	}

	gen := generator.New(w.Codegen, logger, rawLogger)
	regenerate := func() error { return gen.GenerateFile(w.Input, w.Output) }

	if err := regenerate(); err != nil {
		return err
	}

	watcher, err := watch.New(w.Input, w.Debounce, logger, regenerate)
	if err != nil {
		return err
	}

	logger.Info("Watching for changes", "input", w.Input, "output", w.Output)
	return watcher.Run(ctx)
}
