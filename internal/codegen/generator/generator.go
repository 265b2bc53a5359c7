// Package generator drives a metadata file through the parser and writes one
// C typedef per declared object.
package generator

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/metagen/internal/codegen/types"
	"github.com/Alia5/metagen/internal/log"
)

var (
	// ErrInput wraps failures to open or read the metadata source.
	ErrInput = errors.New("input unavailable")
	// ErrOutput wraps failures to create or write the generated header.
	ErrOutput = errors.New("output unavailable")
)

// StdStream names standard input or output in place of a file path.
const StdStream = "-"

// Generator turns metadata files into C headers using a fixed Config.
type Generator struct {
	cfg       Config
	types     *types.Registry
	logger    *slog.Logger
	rawLogger log.RawLogger
}

// New returns a Generator. A nil logger discards diagnostics and a nil
// rawLogger records nothing.
func New(cfg Config, logger *slog.Logger, rawLogger log.RawLogger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	return &Generator{
		cfg:       cfg,
		types:     types.NewRegistry(cfg.ExtraTypes...),
		logger:    logger,
		rawLogger: rawLogger,
	}
}

// Generate parses r and writes the generated header to w.
// Every call starts from an empty object table. Only stream failures are
// returned; problems in the metadata are logged and commented out.
func (g *Generator) Generate(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	s := newSession(g, bw)

	if err := s.run(r); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrOutput, err)
	}

	g.logger.Debug("Generated header", "objects", s.emitted, "registered", s.objects.Len())
	return nil
}

// Render runs Generate against the file at inPath and returns the output.
func (g *Generator) Render(inPath string) ([]byte, error) {
	in, closeIn, err := openInput(inPath)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	var buf bytes.Buffer
	if err := g.Generate(in, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateFile reads inPath and writes the header to outPath. Either may be
// StdStream. A partially written output file is removed on failure.
func (g *Generator) GenerateFile(inPath, outPath string) error {
	in, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	if outPath == StdStream {
		return g.Generate(in, os.Stdout)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	genErr := g.Generate(in, out)
	closeErr := out.Close()
	if genErr == nil && closeErr != nil {
		genErr = fmt.Errorf("%w: close %s: %w", ErrOutput, outPath, closeErr)
	}
	if genErr != nil {
		_ = os.Remove(outPath)
		return genErr
	}

	g.logger.Info("Generated header", "input", inPath, "output", outPath)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == StdStream {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return f, func() { _ = f.Close() }, nil
}
