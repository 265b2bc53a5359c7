package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/metagen/internal/codegen/meta"
	"github.com/Alia5/metagen/internal/codegen/parser"
	"github.com/Alia5/metagen/internal/codegen/types"
)

func newValidator(t *testing.T, objects ...string) *parser.Validator {
	t.Helper()
	tbl := meta.NewObjectTable(0)
	for _, o := range objects {
		require.NoError(t, tbl.Register(o))
	}
	return &parser.Validator{
		Objects:       tbl,
		Types:         types.NewRegistry(),
		MaxNameLength: 63,
	}
}

func TestValidName(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name string
		want bool
	}{
		{"good", true},
		{"snake_case", true},
		{"camelCase2", true},
		{"_leading", true},
		{"1bad", false},
		{"9lives", false},
		{"go@od", false},
		{"a!", false},
		{"a#b", false},
		{"a$b", false},
		{"a%b", false},
		{"a^b", false},
		{"a&b", false},
		{"a*b", false},
		{"f(x)", false},
		{"int", false},
		{"uint32_t", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidName(tt.name))
		})
	}
}

func TestResolveType(t *testing.T) {
	v := newValidator(t, "Player", "bool")

	tests := []struct {
		raw       string
		want      string
		wantValid bool
	}{
		{"int", "int", true},
		{"double", "double", true},
		{"Player", "PlayerData", true},
		{"bool", "boolData", true},
		{"Enemy", "Enemy", false},
		{"player", "player", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := v.ResolveType(tt.raw)
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTypeSelf(t *testing.T) {
	v := newValidator(t, "Node", "Leaf")
	v.Current = "Node"
	v.CurrentRegistered = true

	got, ok := v.ResolveType("Node")
	assert.False(t, ok)
	assert.Equal(t, "Node", got)

	got, ok = v.ResolveType("Leaf")
	assert.True(t, ok)
	assert.Equal(t, "LeafData", got)
}

func TestResolveTypeEarlierDuplicate(t *testing.T) {
	v := newValidator(t, "A", "A")
	v.Current = "A"
	v.CurrentRegistered = true

	got, ok := v.ResolveType("A")
	assert.True(t, ok)
	assert.Equal(t, "AData", got)
}

func TestResolveTypeSelfUnregistered(t *testing.T) {
	// The current object did not fit in the table; an earlier one did.
	v := newValidator(t, "A")
	v.Current = "A"

	got, ok := v.ResolveType("A")
	assert.True(t, ok)
	assert.Equal(t, "AData", got)

	v = newValidator(t)
	v.Current = "A"
	_, ok = v.ResolveType("A")
	assert.False(t, ok)
}

func TestField(t *testing.T) {
	v := newValidator(t, "Player")

	f, err := v.Field("owner", "Player")
	require.NoError(t, err)
	assert.Equal(t, meta.Field{Name: "owner", Type: "PlayerData", NameValid: true, TypeValid: true}, f)

	f, err = v.Field("1bad", "Enemy")
	require.NoError(t, err)
	assert.False(t, f.NameValid)
	assert.False(t, f.TypeValid)
	assert.Equal(t, "Enemy", f.Type)
}

func TestFieldTooLong(t *testing.T) {
	v := newValidator(t)
	long := strings.Repeat("a", 64)

	_, err := v.Field(long, "int")
	require.ErrorIs(t, err, parser.ErrIdentifierTooLong)

	_, err = v.Field("ok", long)
	require.ErrorIs(t, err, parser.ErrIdentifierTooLong)

	_, err = v.Field(strings.Repeat("a", 63), "int")
	require.NoError(t, err)

	v.MaxNameLength = 0
	_, err = v.Field(strings.Repeat("a", 500), "int")
	require.NoError(t, err)
}
