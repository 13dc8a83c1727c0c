// Package logfile routes the standard logger to a rotated file under logs/.
// The terminal front-end owns stdout, so log output never goes there.
package logfile

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Dir      = "logs"
	FileName = "pong.log"

	// MaxSize triggers rotation of the existing log on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup enables file logging when debug is set, otherwise discards all log output
// Returns the open file for the caller to close, or nil
func Setup(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v (logging disabled)\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(Dir, FileName)
	rotate(path, time.Now())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v (logging disabled)\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotate renames an oversized log to pong-YYYYMMDD-HHMMSS.log
func rotate(path string, now time.Time) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return
	}
	rotated := filepath.Join(Dir, fmt.Sprintf("pong-%s.log", now.Format("20060102-150405")))
	os.Rename(path, rotated)
}
