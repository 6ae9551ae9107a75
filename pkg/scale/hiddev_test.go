package scale

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecord(t *testing.T, path string, grams uint32) {
	t.Helper()

	record := make([]byte, recordSize)
	binary.LittleEndian.PutUint32(record[recordSize-4:], grams)
	require.NoError(t, os.WriteFile(path, record, 0644))
}

func TestHIDScaleReadWeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiddev0")
	writeRecord(t, path, 2530)

	s := NewHIDScale(WithDevicePath(path))
	sample := s.ReadWeight()

	require.True(t, sample.Valid())
	assert.Equal(t, 2530, sample.Grams)
	assert.False(t, sample.TimeStamp.IsZero())
}

func TestHIDScaleMissingDevice(t *testing.T) {
	s := NewHIDScale(WithDevicePath(filepath.Join(t.TempDir(), "nonexistent")))

	sample := s.ReadWeight()
	assert.False(t, sample.Valid())
	assert.Equal(t, Unavailable, sample.Grams)
}

func TestHIDScaleShortRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiddev0")
	require.NoError(t, os.WriteFile(path, make([]byte, recordSize-1), 0644))

	s := NewHIDScale(WithDevicePath(path))
	assert.False(t, s.ReadWeight().Valid())
}

func TestSampleValid(t *testing.T) {
	assert.True(t, Sample{Grams: 0}.Valid())
	assert.True(t, Sample{Grams: 2530}.Valid())
	assert.False(t, Sample{Grams: Unavailable}.Valid())
}
