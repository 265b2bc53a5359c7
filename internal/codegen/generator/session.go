package generator

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cgen "github.com/Alia5/metagen/internal/codegen/generator/c"
	"github.com/Alia5/metagen/internal/codegen/meta"
	"github.com/Alia5/metagen/internal/codegen/parser"
	"github.com/Alia5/metagen/internal/log"
)

type parseState int

const (
	stateIdle parseState = iota
	stateInObject
	// stateSkipping consumes the body of a rejected duplicate object.
	stateSkipping
)

// session is the mutable state of one Generate call.
type session struct {
	cfg       Config
	logger    *slog.Logger
	rawLogger log.RawLogger
	out       io.Writer
	objects   *meta.ObjectTable
	validator parser.Validator

	state   parseState
	current *meta.Object
	line    int
	emitted int
}

func newSession(g *Generator, out io.Writer) *session {
	objects := meta.NewObjectTable(g.cfg.MaxObjects)
	return &session{
		cfg:       g.cfg,
		logger:    g.logger,
		rawLogger: g.rawLogger,
		out:       out,
		objects:   objects,
		validator: parser.Validator{
			Objects:       objects,
			Types:         g.types,
			MaxNameLength: g.cfg.MaxNameLength,
		},
	}
}

func (s *session) run(r io.Reader) error {
	if err := cgen.WriteBanner(s.out); err != nil {
		return fmt.Errorf("%w: banner: %w", ErrOutput, err)
	}

	br := bufio.NewReader(r)
	for {
		raw, tooLong, err := readLine(br, s.cfg.MaxLineLength)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInput, s.line+1, err)
		}
		s.line++

		if tooLong {
			s.logger.Warn("Skipping line longer than limit", "line", s.line, "max", s.cfg.MaxLineLength)
			s.rawLogger.Log(s.line, "too-long", "")
			continue
		}
		if err := s.handleLine(raw, parser.Trim(raw)); err != nil {
			return err
		}
	}

	if s.state == stateInObject {
		s.logger.Warn("Object not closed before end of input, emitting it anyway",
			"object", s.current.Name, "line", s.current.Line)
		return s.flush()
	}
	return nil
}

func (s *session) handleLine(raw, line string) error {
	kind := parser.Classify(line)
	s.rawLogger.Log(s.line, kind.String(), raw)

	switch kind {
	case parser.LineBlank:
		return nil
	case parser.LineObjectStart:
		if s.state == stateInObject {
			s.logger.Warn("Object not closed before next object", "object", s.current.Name, "line", s.line)
			if err := s.flush(); err != nil {
				return err
			}
		}
		s.state = stateIdle
		s.openObject(line)
		return nil
	}

	switch s.state {
	case stateInObject:
		switch kind {
		case parser.LineObjectEnd:
			return s.flush()
		case parser.LineComment:
			return nil
		default:
			s.addField(line)
		}
	case stateSkipping:
		if kind == parser.LineObjectEnd {
			s.state = stateIdle
		}
	}
	return nil
}

func (s *session) openObject(line string) {
	name, ok := parser.ParseObjectHeader(line)
	if !ok {
		s.logger.Debug("Ignoring malformed object header", "line", s.line)
		return
	}
	if err := s.validator.CheckLength(name); err != nil {
		s.logger.Warn("Rejecting object", "line", s.line, "error", err)
		return
	}

	if s.cfg.DuplicateObjects == DuplicateReject && s.objects.Contains(name) {
		s.logger.Warn("Skipping duplicate object", "object", name, "line", s.line)
		s.state = stateSkipping
		return
	}

	registered := true
	if err := s.objects.Register(name); err != nil {
		registered = false
		s.logger.Error("Object cannot be referenced by later fields", "object", name, "line", s.line, "error", err)
	}

	s.current = &meta.Object{Name: name, Line: s.line}
	s.validator.Current = name
	s.validator.CurrentRegistered = registered
	s.state = stateInObject
	s.logger.Debug("Object opened", "object", name, "line", s.line)
}

func (s *session) addField(line string) {
	name, typ, ok := parser.ParseField(line)
	if !ok {
		return
	}
	obj := s.current

	if s.cfg.MaxFields > 0 && len(obj.Fields) >= s.cfg.MaxFields {
		s.logger.Error("Too many fields, dropping field",
			"object", obj.Name, "field", name, "line", s.line, "max", s.cfg.MaxFields)
		return
	}

	field, err := s.validator.Field(name, typ)
	if err != nil {
		s.logger.Warn("Rejecting field", "object", obj.Name, "line", s.line, "error", err)
		return
	}

	if !field.TypeValid {
		s.logger.Warn("Unresolved or invalid field type",
			"object", obj.Name, "field", field.Name, "type", field.Type, "line", s.line)
	}
	if !field.NameValid {
		s.logger.Warn("Invalid field name", "object", obj.Name, "field", field.Name, "line", s.line)
	}

	obj.Fields = append(obj.Fields, field)
}

// flush emits the open object and returns to idle.
func (s *session) flush() error {
	obj := s.current
	s.current = nil
	s.validator.Current = ""
	s.validator.CurrentRegistered = false
	s.state = stateIdle

	if err := cgen.WriteObject(s.out, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	s.emitted++
	s.logger.Log(context.Background(), log.LevelTrace, "Object emitted", "object", obj.Name, "fields", len(obj.Fields))
	return nil
}

// readLine returns the next line without its terminator. A line whose content
// exceeds max bytes is consumed and reported as tooLong with no text; a max of
// zero or less disables the limit. io.EOF is returned only when nothing is left.
func readLine(br *bufio.Reader, max int) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if max > 0 && len(bytes.TrimRight(buf, "\r\n")) > max {
				tooLong = true
				buf = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && read) {
			return "", false, err
		}
		if tooLong {
			return "", true, nil
		}
		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))
		return string(buf), false, nil
	}
}
