package meta

import (
	"errors"
	"fmt"
)

// ErrObjectTableFull is returned by Register once the configured maximum is reached.
var ErrObjectTableFull = errors.New("object table full")

// ObjectTable records object names in declaration order for the duration of one parse.
// Duplicates are stored as given and counted per name.
type ObjectTable struct {
	max   int
	names []string
	index map[string]int
}

// NewObjectTable returns an empty table holding at most max names.
// A max of zero or less means unbounded.
func NewObjectTable(max int) *ObjectTable {
	return &ObjectTable{
		max:   max,
		names: make([]string, 0, 16),
		index: make(map[string]int),
	}
}

// Reset clears every registered name.
func (t *ObjectTable) Reset() {
	t.names = t.names[:0]
	clear(t.index)
}

// Register appends name to the table.
func (t *ObjectTable) Register(name string) error {
	if t.max > 0 && len(t.names) >= t.max {
		return fmt.Errorf("register %q: %w (max %d)", name, ErrObjectTableFull, t.max)
	}
	t.names = append(t.names, name)
	t.index[name]++
	return nil
}

// Contains reports whether name has been registered.
func (t *ObjectTable) Contains(name string) bool {
	return t.index[name] > 0
}

// Count returns how many times name has been registered.
func (t *ObjectTable) Count(name string) int {
	return t.index[name]
}

// Len returns the number of registrations, duplicates included.
func (t *ObjectTable) Len() int {
	return len(t.names)
}

// Names returns the registered names in registration order.
func (t *ObjectTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
