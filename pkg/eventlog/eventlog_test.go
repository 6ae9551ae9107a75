package eventlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffee_scale")

	l, err := Open(path)
	require.NoError(t, err)
	defer l.Close()

	ts := time.Date(2014, 7, 1, 9, 30, 5, 0, time.UTC)
	require.NoError(t, l.Record(ts, 2530))
	require.NoError(t, l.Record(ts.Add(time.Minute), 2264))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2014-07-01T09:30:05,2530\n2014-07-01T09:31:05,2264\n", string(data))
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coffee_scale")

	l, err := Open(path)
	require.NoError(t, err)
	defer l.Close()

	now := time.Date(2014, 7, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, l.Record(now, 2530))
	require.NoError(t, l.Rotate(now))

	rotated := path + ".2014-07-01_10-00-00"
	data, err := os.ReadFile(rotated)
	require.NoError(t, err)
	assert.Equal(t, "2014-07-01T10:00:00,2530\n", string(data))

	// Logging continues into a fresh active file
	require.NoError(t, l.Record(now.Add(time.Second), 2264))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2014-07-01T10:00:01,2264\n", string(data))
}

func TestArchiveMovesAllSiblings(t *testing.T) {
	tempDir := t.TempDir()
	archiveDir := t.TempDir()
	path := filepath.Join(tempDir, "coffee_scale")

	l, err := Open(path)
	require.NoError(t, err)
	defer l.Close()

	now := time.Date(2014, 7, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Record(now, 2000+i))
		require.NoError(t, l.Rotate(now.Add(time.Duration(i)*time.Minute)))
	}

	require.NoError(t, l.Archive(archiveDir))

	// Every rotated sibling is gone from the temp location, only the active
	// file remains
	remaining, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	assert.Empty(t, remaining)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	archived, err := os.ReadDir(archiveDir)
	require.NoError(t, err)
	assert.Len(t, archived, 3)
}

func TestArchiveEmpty(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "coffee_scale"))
	require.NoError(t, err)
	defer l.Close()

	assert.NoError(t, l.Archive(t.TempDir()))
}
