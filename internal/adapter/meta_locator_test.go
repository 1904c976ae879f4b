package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

func newTestLocator(t *testing.T) MetaLocator {
	t.Helper()

	companion, err := DefaultCompanion()
	require.NoError(t, err)

	return NewMetaLocator(NewLocalSourceFSAdapter(), companion)
}

func TestDefaultCompanion(t *testing.T) {
	companion, err := DefaultCompanion()
	require.NoError(t, err)

	assert.Equal(t, "sumneko.lua", companion.ExtensionID)
	assert.Equal(t, ".lua", companion.DefinitionExtension)
	assert.Equal(t, []string{"server/meta/3rd/lua", "meta/3rd/lua", "server/meta", "meta"}, companion.MetaCandidates)
}

func TestMetaLocator_Locate(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit meta dir", func(t *testing.T) {
		dir := t.TempDir()

		got, err := newTestLocator(t).Locate(ctx, LocateOptions{MetaDir: m.Path(dir)})
		require.NoError(t, err)
		assert.Equal(t, m.Path(dir), got)
	})

	t.Run("explicit meta dir missing", func(t *testing.T) {
		_, err := newTestLocator(t).Locate(ctx, LocateOptions{MetaDir: m.Path(filepath.Join(t.TempDir(), "nope"))})
		require.ErrorIs(t, err, ErrMetaDirNotFound)
	})

	t.Run("newest extension and first candidate", func(t *testing.T) {
		root := t.TempDir()
		older := filepath.Join(root, "sumneko.lua-3.9.1-linux-x64")
		newer := filepath.Join(root, "sumneko.lua-3.10.0-linux-x64")
		mustMkdir(t, filepath.Join(older, "server", "meta", "3rd", "lua"))
		mustMkdir(t, filepath.Join(newer, "server", "meta"))
		mustMkdir(t, filepath.Join(newer, "meta", "3rd", "lua"))
		mustMkdir(t, filepath.Join(root, "other.extension-1.0.0"))

		got, err := newTestLocator(t).Locate(ctx, LocateOptions{ExtensionsDirs: []m.Path{m.Path(root)}})
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(newer, "meta", "3rd", "lua")), got)
	})

	t.Run("unreadable extension roots are skipped", func(t *testing.T) {
		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "sumneko.lua", "meta"))

		got, err := newTestLocator(t).Locate(ctx, LocateOptions{
			ExtensionsDirs: []m.Path{m.Path(filepath.Join(root, "missing")), m.Path(root)},
		})
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "sumneko.lua", "meta")), got)
	})

	t.Run("extension not installed", func(t *testing.T) {
		_, err := newTestLocator(t).Locate(ctx, LocateOptions{ExtensionsDirs: []m.Path{m.Path(t.TempDir())}})
		require.ErrorIs(t, err, ErrCompanionNotFound)
	})

	t.Run("extension without meta dir", func(t *testing.T) {
		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "sumneko.lua-3.7.4", "bin"))

		_, err := newTestLocator(t).Locate(ctx, LocateOptions{ExtensionsDirs: []m.Path{m.Path(root)}})
		require.ErrorIs(t, err, ErrMetaDirNotFound)
	})

	t.Run("extension id override", func(t *testing.T) {
		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "acme.lua-1.0.0", "meta"))

		got, err := newTestLocator(t).Locate(ctx, LocateOptions{
			ExtensionsDirs: []m.Path{m.Path(root)},
			ExtensionID:    "acme.lua",
		})
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "acme.lua-1.0.0", "meta")), got)
	})
}

func TestMetaLocator_SourceDirs(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "b"))
	mustMkdir(t, filepath.Join(root, "a", "nested"))
	writeTestFile(t, filepath.Join(root, "a", "string.lua"), "")

	dirs, err := newTestLocator(t).SourceDirs(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a")),
		m.Path(filepath.Join(root, "a", "nested")),
		m.Path(filepath.Join(root, "b")),
	}, dirs)
}

func TestMetaLocator_SourceDirs_Empty(t *testing.T) {
	dirs, err := newTestLocator(t).SourceDirs(context.Background(), m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		sign int
	}{
		{"sumneko.lua-3.10.0", "sumneko.lua-3.9.1", 1},
		{"sumneko.lua-3.9.1", "sumneko.lua-3.10.0", -1},
		{"sumneko.lua-3.7.4", "sumneko.lua-3.7.4", 0},
		{"sumneko.lua-3.7.4-linux-x64", "sumneko.lua-3.7.4", 1},
		{"sumneko.lua", "sumneko.lua-1.0.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			got := compareVersions(tt.a, tt.b)
			switch {
			case tt.sign > 0:
				assert.Positive(t, got)
			case tt.sign < 0:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
