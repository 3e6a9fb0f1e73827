// Package logging sends the standard logger, and stderr, to a size-capped
// file in the user's cache folder.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/xxxserxxx/gogauge"
)

// LOGFILE is the name of the log file in the cache folder.
const LOGFILE = "errors.log"

// New opens the log file and points the standard logger at it. The caller
// closes the returned writer on exit.
func New(c gogauge.Config) (io.WriteCloser, error) {
	cache := c.ConfigDir.QueryCacheFolder()
	if err := cache.MkdirAll(); err != nil && !os.IsExist(err) {
		return nil, err
	}
	w := &RotateWriter{
		filename:   filepath.Join(cache.Path, LOGFILE),
		maxLogSize: c.MaxLogSize,
		dupStderr:  true,
	}
	if err := w.rotate(); err != nil {
		return nil, err
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(w)
	return w, nil
}

// RotateWriter is a file writer that moves the file aside to <name>.1 once
// it grows past maxLogSize, keeping one old generation.
type RotateWriter struct {
	lock       sync.Mutex
	filename   string
	fp         *os.File
	maxLogSize int64
	// dupStderr makes stderr follow the current file
	dupStderr bool
}

func (w *RotateWriter) Write(output []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.maxLogSize > 0 {
		if fi, err := w.fp.Stat(); err == nil && fi.Size()+int64(len(output)) > w.maxLogSize {
			if err := w.rotateLocked(true); err != nil {
				return 0, err
			}
		}
	}
	return w.fp.Write(output)
}

func (w *RotateWriter) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.fp == nil {
		return nil
	}
	err := w.fp.Close()
	w.fp = nil
	return err
}

func (w *RotateWriter) rotate() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.rotateLocked(false)
}

// rotateLocked reopens the log, first moving it aside if it is too big or
// force is set.
func (w *RotateWriter) rotateLocked(force bool) error {
	if w.fp != nil {
		if err := w.fp.Close(); err != nil {
			return err
		}
		w.fp = nil
	}
	if fi, err := os.Stat(w.filename); err == nil && (force || w.maxLogSize > 0 && fi.Size() >= w.maxLogSize) {
		if err := os.Rename(w.filename, w.filename+".1"); err != nil {
			return fmt.Errorf("rotating %s: %w", w.filename, err)
		}
	}
	fp, err := os.OpenFile(w.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return err
	}
	w.fp = fp
	if w.dupStderr {
		if err := stderrToLogfile(fp); err != nil {
			fmt.Fprintf(fp, "redirecting stderr: %s\n", err)
		}
	}
	return nil
}
