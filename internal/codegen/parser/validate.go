package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alia5/metagen/internal/codegen/meta"
	"github.com/Alia5/metagen/internal/codegen/types"
)

// forbiddenNameChars may not appear anywhere in a field name.
const forbiddenNameChars = "!#@$%^&*()"

// ErrIdentifierTooLong is returned for names or types longer than the configured maximum.
var ErrIdentifierTooLong = errors.New("identifier too long")

// Validator checks field names and resolves field types against the objects
// declared so far and the built-in type registry.
type Validator struct {
	Objects *meta.ObjectTable
	Types   *types.Registry
	// MaxNameLength bounds identifiers in bytes; zero or less disables the check.
	MaxNameLength int
	// Current is the object whose fields are being validated. Its own
	// registration never resolves inside its body; an earlier object of the
	// same name still does.
	Current string
	// CurrentRegistered records whether Current made it into Objects.
	CurrentRegistered bool
}

// CheckLength rejects identifiers longer than MaxNameLength.
func (v *Validator) CheckLength(ident string) error {
	if v.MaxNameLength > 0 && len(ident) > v.MaxNameLength {
		return fmt.Errorf("%w: %q is %d bytes (max %d)", ErrIdentifierTooLong, ident, len(ident), v.MaxNameLength)
	}
	return nil
}

// ValidName reports whether name can be used as a struct member.
func (v *Validator) ValidName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	return !v.Types.IsBuiltin(name)
}

// ResolveType maps a raw type spelling to its emitted form.
// Declared objects take precedence over built-in spellings.
func (v *Validator) ResolveType(raw string) (string, bool) {
	if v.declaredBefore(raw) {
		return meta.StructName(raw), true
	}
	if v.Types.IsBuiltin(raw) {
		return raw, true
	}
	return raw, false
}

func (v *Validator) declaredBefore(name string) bool {
	n := v.Objects.Count(name)
	if name == v.Current && v.CurrentRegistered {
		n--
	}
	return n > 0
}

// Field builds a validated field from raw tokens. Only over-long identifiers
// are an error; other problems are recorded in the validity flags.
func (v *Validator) Field(name, typ string) (meta.Field, error) {
	if err := v.CheckLength(name); err != nil {
		return meta.Field{}, fmt.Errorf("field name: %w", err)
	}
	if err := v.CheckLength(typ); err != nil {
		return meta.Field{}, fmt.Errorf("field type: %w", err)
	}
	resolved, typeValid := v.ResolveType(typ)
	return meta.Field{
		Name:      name,
		Type:      resolved,
		NameValid: v.ValidName(name),
		TypeValid: typeValid,
	}, nil
}
