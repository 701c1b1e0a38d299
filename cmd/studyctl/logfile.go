package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/khy07181/the-java-test/internal/config"
)

const megabyte = 1 << 20

// cappedLogFile is an io.WriteCloser over a log file that, once it grows
// past maxBytes, drops everything but the newest keepBytes.
type cappedLogFile struct {
	mu        sync.Mutex
	file      *os.File
	size      int64
	maxBytes  int64
	keepBytes int64
}

func openLogFile(cfg config.LogConfig) (*cappedLogFile, error) {
	return openCappedLogFile(cfg.Path, int64(cfg.MaxSizeMB)*megabyte, int64(cfg.KeepSizeMB)*megabyte)
}

func openCappedLogFile(path string, maxBytes, keepBytes int64) (*cappedLogFile, error) {
	if keepBytes <= 0 || maxBytes <= keepBytes {
		return nil, fmt.Errorf("invalid log size bounds: keep=%d max=%d", keepBytes, maxBytes)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek log file: %w", err)
	}

	l := &cappedLogFile{file: file, size: size, maxBytes: maxBytes, keepBytes: keepBytes}
	if err := l.shrink(); err != nil {
		file.Close()
		return nil, err
	}
	return l, nil
}

func (l *cappedLogFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, err := l.file.Write(p)
	l.size += int64(n)
	if err != nil {
		return n, err
	}
	return n, l.shrink()
}

func (l *cappedLogFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// shrink must be called with mu held.
func (l *cappedLogFile) shrink() error {
	if l.size <= l.maxBytes {
		return nil
	}

	tail := make([]byte, l.keepBytes)
	n, err := l.file.ReadAt(tail, l.size-l.keepBytes)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read log tail: %w", err)
	}
	tail = tail[:n]

	if err := l.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate log: %w", err)
	}
	if _, err := l.file.WriteAt(tail, 0); err != nil {
		return fmt.Errorf("rewrite log tail: %w", err)
	}
	if _, err := l.file.Seek(int64(len(tail)), io.SeekStart); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}
	l.size = int64(len(tail))
	return nil
}
