package cmd_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/metagen/internal/cmd"
	"github.com/Alia5/metagen/internal/codegen/generator"
	"github.com/Alia5/metagen/internal/log"
)

const playerMeta = "obj :: Player {\n    health :: int\n    level :: int\n}\n"

const playerHeader = "/* Auto-generated code - do not edit! */\n\n" +
	"typedef struct PlayerData {\n   int health;\n   int level;\n} PlayerData;\n\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeMeta(t *testing.T, content string) (dir, in string) {
	t.Helper()
	dir = t.TempDir()
	in = filepath.Join(dir, "data.meta")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))
	return dir, in
}

func TestGenerateRun(t *testing.T) {
	dir, in := writeMeta(t, playerMeta)
	out := filepath.Join(dir, "data.h")

	g := &cmd.Generate{Input: in, Output: out, Codegen: generator.DefaultConfig()}
	require.NoError(t, g.Run(discardLogger(), log.NewRaw(nil)))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, playerHeader, string(got))
	assert.False(t, g.WritesStdout())
}

func TestGenerateRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	g := &cmd.Generate{Input: filepath.Join(dir, "missing.meta"), Output: filepath.Join(dir, "data.h"), Codegen: generator.DefaultConfig()}

	err := g.Run(discardLogger(), log.NewRaw(nil))
	require.ErrorIs(t, err, generator.ErrInput)
}

func TestCheckRun(t *testing.T) {
	dir, in := writeMeta(t, playerMeta)
	out := filepath.Join(dir, "data.h")
	c := &cmd.Check{Input: in, Output: out, Codegen: generator.DefaultConfig()}

	require.ErrorIs(t, c.Run(discardLogger(), log.NewRaw(nil)), generator.ErrStale)

	require.NoError(t, os.WriteFile(out, []byte(playerHeader), 0o644))
	require.NoError(t, c.Run(discardLogger(), log.NewRaw(nil)))
}

func TestWatchRegenerates(t *testing.T) {
	dir, in := writeMeta(t, playerMeta)
	out := filepath.Join(dir, "data.h")
	w := &cmd.Watch{Input: in, Output: out, Debounce: 20 * time.Millisecond, Codegen: generator.DefaultConfig()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, discardLogger(), log.NewRaw(nil)) }()

	require.Eventually(t, func() bool {
		got, err := os.ReadFile(out)
		return err == nil && string(got) == playerHeader
	}, 2*time.Second, 10*time.Millisecond, "initial generation")

	// Give the watcher time to register before the edit.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(in, []byte("obj :: Enemy {\n    damage :: float\n}\n"), 0o644))

	require.Eventually(t, func() bool {
		got, err := os.ReadFile(out)
		return err == nil && string(got) == "/* Auto-generated code - do not edit! */\n\n"+
			"typedef struct EnemyData {\n   float damage;\n} EnemyData;\n\n"
	}, 2*time.Second, 10*time.Millisecond, "regeneration after edit")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestWatchRejectsStdStreams(t *testing.T) {
	w := &cmd.Watch{Input: "-", Output: "data.h"}
	require.Error(t, w.Watch(context.Background(), discardLogger(), log.NewRaw(nil)))
}

func decodeTOML(data []byte, v any) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	*(v.(*map[string]any)) = tree.ToMap()
	return nil
}

func TestConfigInit(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", decodeTOML},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "nested", "metagen."+tt.format)
			c := &cmd.ConfigInit{Command: "watch", Format: tt.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, tt.decode(data, &got))

			assert.EqualValues(t, 32, got["max_fields"])
			assert.EqualValues(t, 63, got["max_name_length"])
			assert.Equal(t, "allow", got["duplicate_objects"])
			assert.Equal(t, "200ms", got["debounce"])
			assert.NotContains(t, got, "input", "positional arguments are not configurable")

			logSection, ok := got["log"].(map[string]any)
			require.True(t, ok, "log section: %T", got["log"])
			assert.Equal(t, "info", logSection["level"])
			assert.Equal(t, "auto", logSection["format"])
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "metagen.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &cmd.ConfigInit{Command: "generate", Format: "json", Output: dest}
	require.Error(t, c.Run())

	c.Force = true
	require.NoError(t, c.Run())
}

func TestConfigInitBadFormat(t *testing.T) {
	c := &cmd.ConfigInit{Command: "generate", Format: "ini", Output: filepath.Join(t.TempDir(), "x")}
	require.Error(t, c.Run())
}
