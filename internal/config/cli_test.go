package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/metagen/internal/config"
)

func newParser(t *testing.T, cli *config.CLI, opts ...kong.Option) *kong.Kong {
	t.Helper()
	opts = append([]kong.Option{
		kong.Name("metagen"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	}, opts...)
	p, err := kong.New(cli, opts...)
	require.NoError(t, err)
	return p
}

func TestParseGenerateDefaults(t *testing.T) {
	var cli config.CLI
	ctx, err := newParser(t, &cli).Parse([]string{"generate", "data.meta"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ctx.Command(), "generate"))
	assert.Equal(t, "data.meta", cli.Generate.Input)
	assert.Equal(t, "data.h", cli.Generate.Output)
	assert.Equal(t, 32, cli.Generate.Codegen.MaxFields)
	assert.Equal(t, 63, cli.Generate.Codegen.MaxNameLength)
	assert.Equal(t, "allow", cli.Generate.Codegen.DuplicateObjects)
	assert.Equal(t, "info", cli.Log.Level)
	assert.False(t, cli.StdoutBusy(ctx.Command()))
}

func TestParseGenerateFlags(t *testing.T) {
	var cli config.CLI
	ctx, err := newParser(t, &cli).Parse([]string{
		"--log.level=debug",
		"generate", "-", "-",
		"--max-fields=4",
		"--duplicate-objects=reject",
		"--extra-types=char,Vec3",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, 4, cli.Generate.Codegen.MaxFields)
	assert.Equal(t, "reject", cli.Generate.Codegen.DuplicateObjects)
	assert.Equal(t, []string{"char", "Vec3"}, cli.Generate.Codegen.ExtraTypes)
	assert.True(t, cli.StdoutBusy(ctx.Command()))
}

func TestParseRejectsUnknownPolicy(t *testing.T) {
	var cli config.CLI
	_, err := newParser(t, &cli).Parse([]string{"generate", "data.meta", "--duplicate-objects=merge"})
	require.Error(t, err)
}

func TestJSONConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metagen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"duplicate_objects": "reject", "log": {"level": "warn"}}`), 0o644))

	var cli config.CLI
	_, err := newParser(t, &cli, kong.Configuration(kong.JSON, path)).Parse([]string{"check", "a.meta", "a.h"})
	require.NoError(t, err)

	assert.Equal(t, "reject", cli.Check.Codegen.DuplicateObjects)
	assert.Equal(t, "warn", cli.Log.Level)
}

func TestWatchDoesNotBusyStdout(t *testing.T) {
	var cli config.CLI
	ctx, err := newParser(t, &cli).Parse([]string{"watch", "data.meta"})
	require.NoError(t, err)
	assert.False(t, cli.StdoutBusy(ctx.Command()))
}
