package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
)

func TestResumeFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.md", "page.html", "notes.pdf", "img.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := resumeFiles(dir)
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"a.md", "b.txt", "page.html"}, names)
}

func TestResumeFilesMissingDir(t *testing.T) {
	_, err := resumeFiles(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestBuildEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("default is weighted", func(t *testing.T) {
		engine, cleanup, err := buildEngine(ctx, config.Config{})
		defer cleanup()
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("ats", func(t *testing.T) {
		engine, cleanup, err := buildEngine(ctx, config.Config{Engine: "ats"})
		defer cleanup()
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, cleanup, err := buildEngine(ctx, config.Config{Engine: "turbo"})
		defer cleanup()
		require.Error(t, err)
	})
}
