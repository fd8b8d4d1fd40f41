// Package runlog writes the append-only application log. Each write opens,
// appends, flushes and closes the file so no handle outlives the operation.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stampLayout = "2006-01-02 15:04:05"

type Writer struct {
	path string
	now  func() time.Time
}

func New(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

// Line appends a bare message line.
func (w *Writer) Line(message string) error {
	return w.append(message + "\n")
}

// Stamped appends a "YYYY-MM-DD HH:MM:SS | message" line.
func (w *Writer) Stamped(message string) error {
	return w.append(fmt.Sprintf("%s | %s\n", w.now().Format(stampLayout), message))
}

func (w *Writer) append(line string) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
