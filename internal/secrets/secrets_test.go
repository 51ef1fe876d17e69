// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Store
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, SpoonacularKey, "  abc123  \n")
				writeFile(t, dir, "other-key", "xyz")
				return dir
			},
			want: Store{SpoonacularKey: "abc123", "other-key": "xyz"},
		},
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Store{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, SpoonacularKey, "valid")
				writeFile(t, dir, "empty", "")
				writeFile(t, dir, "blank", "  \n\t ")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Store{SpoonacularKey: "valid"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadLogsKeyNamesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SpoonacularKey, "do-not-log-me")
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := Load(dir, zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("loaded secrets").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{SpoonacularKey}, entries[0].ContextMap()["keys"])
	assert.NotContains(t, fmt.Sprint(entries[0].ContextMap()), "do-not-log-me")
}

func TestStoreOr(t *testing.T) {
	s := Store{SpoonacularKey: "from-file"}
	assert.Equal(t, "from-env", s.Or("from-env", SpoonacularKey))
	assert.Equal(t, "from-file", s.Or("", SpoonacularKey))
	assert.Equal(t, "", s.Or("", "missing"))
	assert.Equal(t, []string{SpoonacularKey}, s.Keys())
}
