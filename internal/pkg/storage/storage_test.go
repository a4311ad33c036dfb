package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareLayout(t *testing.T) {
	root := t.TempDir()
	want := Layout{
		Uploads:   filepath.Join(root, "uploads"),
		Processed: filepath.Join(root, "processed"),
		Templates: filepath.Join(root, "templates"),
	}

	got, err := PrepareLayout(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, dir := range []string{want.Uploads, want.Processed, want.Templates} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// second run over existing folders is a no-op
	_, err = PrepareLayout(want)
	assert.NoError(t, err)
}

func TestPrepareLayoutRejectsEmptyFolder(t *testing.T) {
	_, err := PrepareLayout(Layout{Uploads: t.TempDir()})
	assert.Error(t, err)
}

func TestFileStorage(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	assert.False(t, s.Exists("flag.png"))
	require.NoError(t, s.Save("flag.png", strings.NewReader("first")))
	require.NoError(t, s.Save("flag.png", strings.NewReader("second")))
	assert.True(t, s.Exists("flag.png"))

	r, err := s.Get("flag.png")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	_, err = s.Get("other.png")
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, filepath.Join(s.Path(""), "flag.png"), s.Path("flag.png"))
}
