package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main.lua"), "print(1)\n")

	nestedDir := filepath.Join(root, "nested")
	mustMkdir(t, nestedDir)
	child := filepath.Join(nestedDir, "child.lua")
	writeTestFile(t, child, "print(2)\n")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, containsPath(visited, child), "nested file should be visited")
	assert.True(t, containsPath(visited, filepath.Join(root, "main.lua")))
}

func TestLocalSourceFSAdapter_Walk_CanceledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := adapter.Walk(ctx, m.Path(t.TempDir()), func(string, os.DirEntry, error) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	path := m.Path(filepath.Join(t.TempDir(), "main.lua"))
	content := "local insert = table.insert\n"

	require.NoError(t, adapter.WriteFile(ctx, path, []byte(content), 0o600))

	got, err := adapter.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.lua"), "")
	writeTestFile(t, filepath.Join(root, "a.lua"), "")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(context.Background(), m.Path(root))
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.Equal(t, []string{"a.lua", "b.lua", "c"}, names)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()
	root := t.TempDir()

	info, err := adapter.FileInfo(ctx, m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.FileInfo(ctx, m.Path(filepath.Join(root, "missing")))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_RelAndJoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	joined := adapter.JoinPath(ctx, "root", "meta", "3rd")
	assert.Equal(t, m.Path(filepath.Join("root", "meta", "3rd")), joined)

	rel, err := adapter.RelPath(ctx, m.Path("root"), joined)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("meta", "3rd")), rel)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
