package rename_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"extrenamer/internal/errors"
	"extrenamer/internal/rename"
	"extrenamer/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFiles(t, dir, "movie.avi", "movie2.avi", "note.txt", "README", "clip.AVI")
	testutils.CreateTestDirs(t, dir, "folder.avi", "sub")
	testutils.CreateTestFiles(t, filepath.Join(dir, "sub"), "nested.avi")

	t.Run("exact suffix", func(t *testing.T) {
		matched, err := rename.Scan(dir, rename.DeriveRule("avi", "dat"))
		require.NoError(t, err)
		assert.Equal(t, []string{"movie.avi", "movie2.avi"}, testutils.Sorted(matched))
	})

	t.Run("all matches every regular file", func(t *testing.T) {
		matched, err := rename.Scan(dir, rename.DeriveRule("all", "dat"))
		require.NoError(t, err)
		assert.Equal(t, []string{"README", "clip.AVI", "movie.avi", "movie2.avi", "note.txt"}, testutils.Sorted(matched))
	})

	t.Run("add matches every regular file", func(t *testing.T) {
		matched, err := rename.Scan(dir, rename.DeriveRule("add", "dat"))
		require.NoError(t, err)
		assert.Len(t, matched, 5)
		assert.NotContains(t, matched, "sub")
		assert.NotContains(t, matched, "folder.avi")
	})

	t.Run("no match", func(t *testing.T) {
		matched, err := rename.Scan(dir, rename.DeriveRule("mkv", "dat"))
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("scan does not modify the directory", func(t *testing.T) {
		before := testutils.ListNames(t, dir)
		_, err := rename.Scan(dir, rename.DeriveRule("all", "none"))
		require.NoError(t, err)
		assert.Equal(t, before, testutils.ListNames(t, dir))
	})
}

func TestScanSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	dir := t.TempDir()
	testutils.CreateTestFiles(t, dir, "real.avi")
	testutils.CreateTestDirs(t, dir, "target-dir")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real.avi"), filepath.Join(dir, "link.avi")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "target-dir"), filepath.Join(dir, "dirlink.avi")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling.avi")))

	matched, err := rename.Scan(dir, rename.DeriveRule("avi", "dat"))
	require.NoError(t, err)
	assert.Equal(t, []string{"link.avi", "real.avi"}, testutils.Sorted(matched))

	files, err := rename.ListFiles(dir)
	require.NoError(t, err)
	for _, f := range files {
		assert.Equal(t, f.Name() == "link.avi", f.Symlink, f.Name())
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.txt": "12345",
		"b":     "",
	})
	testutils.CreateTestDirs(t, dir, "c")

	files, err := rename.ListFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	sizes := map[string]int64{}
	for _, f := range files {
		sizes[f.Name()] = f.Size
		assert.Equal(t, dir, filepath.Dir(f.Path))
	}
	assert.Equal(t, map[string]int64{"a.txt": 5, "b": 0}, sizes)
}

func TestScanErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := rename.Scan(filepath.Join(t.TempDir(), "nope"), rename.DeriveRule("avi", "dat"))
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFiles(t, dir, "plain.txt")

		_, err := rename.Scan(filepath.Join(dir, "plain.txt"), rename.DeriveRule("avi", "dat"))
		require.Error(t, err)

		var fe *errors.FileError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, errors.DirectoryUnreadable, fe.Kind())
	})
}
