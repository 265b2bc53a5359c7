// Package parser tokenizes metadata lines and validates the fields they declare.
package parser

import "strings"

// LineKind classifies one line of a metadata file.
type LineKind int

const (
	LineBlank LineKind = iota
	LineObjectStart
	LineObjectEnd
	LineComment
	LineOther
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineObjectStart:
		return "object-start"
	case LineObjectEnd:
		return "object-end"
	case LineComment:
		return "comment"
	default:
		return "other"
	}
}

const (
	objectPrefix = "obj ::"
	fieldMarker  = "::"
)

// Trim strips a trailing carriage return and leading spaces and tabs.
// Trailing whitespace is kept; the tokenizers ignore it.
func Trim(line string) string {
	line = strings.TrimSuffix(line, "\r")
	return strings.TrimLeft(line, " \t")
}

// Classify returns the kind of an already trimmed line.
// An object header wins over a closing brace on the same line, and a closing
// brace wins over a comment.
func Classify(line string) LineKind {
	switch {
	case strings.TrimLeft(line, " \t") == "":
		return LineBlank
	case strings.HasPrefix(line, objectPrefix):
		return LineObjectStart
	case strings.Contains(line, "}"):
		return LineObjectEnd
	case strings.HasPrefix(line, "#"):
		return LineComment
	default:
		return LineOther
	}
}

// ParseObjectHeader extracts the object name from `obj :: <Name> {`.
// The name is the first whitespace-delimited token after the prefix; an opening
// brace glued to it is not part of the name.
func ParseObjectHeader(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, objectPrefix)
	if !ok {
		return "", false
	}
	name, _ := nextToken(rest)
	name, _, _ = strings.Cut(name, "{")
	if name == "" {
		return "", false
	}
	return name, true
}

// ParseField extracts the raw name and type from `<name> :: <type>`.
// Tokens after the type are ignored.
func ParseField(line string) (name, typ string, ok bool) {
	name, rest := nextToken(line)
	if name == "" {
		return "", "", false
	}
	rest, ok = strings.CutPrefix(strings.TrimLeft(rest, " \t\v\f"), fieldMarker)
	if !ok {
		return "", "", false
	}
	typ, _ = nextToken(rest)
	if typ == "" {
		return "", "", false
	}
	return name, typ, true
}

// nextToken skips leading whitespace and splits off the next run of non-whitespace.
func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t\v\f\r\n")
	end := strings.IndexAny(s, " \t\v\f\r\n")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
