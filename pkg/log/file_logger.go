package log

import (
	"fmt"
	"os"
	"sync"
)

// FileLogger appends events to an .rlog file. Each event is encoded before
// the lock is taken and written with a single Write call.
//
// Write failures never reach the caller of Log. The first one is kept and
// reported by Err, and later events are still attempted.
type FileLogger struct {
	path string

	mu    sync.Mutex
	file  *os.File
	count int
	err   error
}

// NewFileLogger opens path for appending, creating it with mode 0644.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return &FileLogger{path: path, file: f}, nil
}

// Path returns the file the logger writes to.
func (l *FileLogger) Path() string { return l.path }

// Log implements Logger. Events logged after Close are dropped.
func (l *FileLogger) Log(event Event) {
	data, encErr := EncodeEvent(event)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	err := encErr
	if err == nil {
		_, err = l.file.Write(data)
	}
	if err != nil {
		if l.err == nil {
			l.err = fmt.Errorf("log: write %s: %w", l.path, err)
		}
		return
	}
	l.count++
}

// Count returns the number of events written so far.
func (l *FileLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Err returns the first encode or write failure.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Sync flushes the file to stable storage.
func (l *FileLogger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	return l.file.Sync()
}

// Close closes the file. Calling it again is a no-op.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

var _ Logger = (*FileLogger)(nil)
