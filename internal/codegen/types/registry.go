// Package types holds the allow-list of scalar C type spellings a field may use.
package types

// builtins is the fixed set of scalar spellings every registry starts with.
var builtins = []string{
	"int",
	"int8_t",
	"int16_t",
	"int32_t",
	"int64_t",
	"uint8_t",
	"uint16_t",
	"uint32_t",
	"uint64_t",
	"float",
	"double",
	"bool",
	"size_t",
}

// Registry answers membership queries for built-in type spellings.
// Matching is exact and case-sensitive.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry returns a registry seeded with the built-in spellings plus any extra ones.
// Empty extras are ignored.
func NewRegistry(extra ...string) *Registry {
	r := &Registry{names: make(map[string]struct{}, len(builtins)+len(extra))}
	for _, n := range builtins {
		r.names[n] = struct{}{}
	}
	for _, n := range extra {
		if n == "" {
			continue
		}
		r.names[n] = struct{}{}
	}
	return r
}

// IsBuiltin reports whether name is a registered scalar type.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Builtins returns a copy of the default spellings in declaration order.
func Builtins() []string {
	out := make([]string, len(builtins))
	copy(out, builtins)
	return out
}
