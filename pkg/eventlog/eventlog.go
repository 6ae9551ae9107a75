// Package eventlog persists detected weight changes as one timestamped line
// per event and handles rotation of the active file into a permanent archive
// directory. The active file typically lives on a volatile tmpfs; archival
// moves rotated segments onto durable storage.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// lineTimeFormat is the timestamp format of a change event line
	lineTimeFormat = "2006-01-02T15:04:05"

	// rotateStampFormat is the suffix appended to rotated segments
	rotateStampFormat = "2006-01-02_15-04-05"

	fileMode = 0644
)

// Log denotes the change-event log backed by a single active file
type Log struct {
	path string
	file *os.File
}

// Open instantiates a new Log, creating or appending to the active file
func Open(path string) (*Log, error) {

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log %s: %w", path, err)
	}

	return &Log{
		path: path,
		file: f,
	}, nil
}

// Record appends one change event line of the form
// 2006-01-02T15:04:05,<grams>
func (l *Log) Record(t time.Time, grams int) error {
	_, err := fmt.Fprintf(l.file, "%s,%d\n", t.UTC().Format(lineTimeFormat), grams)
	return err
}

// Rotate closes the active file and renames it to a timestamped sibling,
// then reopens a fresh active file. Logging resumes even if the rename
// failed
func (l *Log) Rotate(now time.Time) error {

	if err := l.file.Close(); err != nil {
		return err
	}

	rotated := fmt.Sprintf("%s.%s", l.path, now.UTC().Format(rotateStampFormat))
	renameErr := os.Rename(l.path, rotated)

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return err
	}
	l.file = f

	return renameErr
}

// Archive moves every rotated sibling of the active file into dir. Moves are
// renames, never copy and delete, so an interrupted run cannot leave a
// partial file in the archive. A failed move does not stop the remaining
// siblings from being archived
func (l *Log) Archive(dir string) error {

	siblings, err := filepath.Glob(l.path + ".*")
	if err != nil {
		return err
	}

	var firstErr error
	for _, src := range siblings {
		if err := os.Rename(src, filepath.Join(dir, filepath.Base(src))); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Path returns the path of the active file
func (l *Log) Path() string {
	return l.path
}

// Close closes the active file
func (l *Log) Close() error {
	return l.file.Close()
}
