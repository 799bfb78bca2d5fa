package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	LogFileName = "flashlight.log"
)

// RotatingFile is an io.Writer appending to a log file that is rotated into numbered
// backups (name.1 ... name.N) once it grows past MaxSize.
type RotatingFile struct {
	Path     string
	MaxSize  int64
	MaxFiles int

	mu   sync.Mutex
	file *os.File
	size int64
}

// OpenRotatingFile opens path for appending, rotating first if it is already too big.
func OpenRotatingFile(path string, maxSize int64, maxFiles int) (*RotatingFile, error) {
	r := &RotatingFile{Path: path, MaxSize: maxSize, MaxFiles: maxFiles}

	r.mu.Lock()
	defer r.mu.Unlock()

	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
		if r.size >= r.MaxSize {
			if err := r.rotate(); err != nil {
				return nil, fmt.Errorf("failed to rotate logs: %w", err)
			}
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Write appends p, rotating afterwards when the size limit is reached.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, err
	}

	if r.size >= r.MaxSize {
		if err := r.rotate(); err != nil {
			return n, fmt.Errorf("failed to rotate logs: %w", err)
		}
		if err := r.open(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Close closes the current file handle.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RotatingFile) open() error {
	file, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

// rotate shifts name.i to name.i+1, dropping the oldest, and moves the live file to name.1.
func (r *RotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}

	// Remove oldest backup
	os.Remove(fmt.Sprintf("%s.%d", r.Path, r.MaxFiles)) // Ignore error if file doesn't exist

	for i := r.MaxFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", r.Path, i)
		newPath := fmt.Sprintf("%s.%d", r.Path, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	if err := os.Rename(r.Path, r.Path+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	r.size = 0
	return nil
}

var (
	logFile   *RotatingFile
	logFileMu sync.Mutex
)

// LogFilePath returns where InitLogging writes inside configDir.
func LogFilePath(configDir string) string {
	return filepath.Join(configDir, LogFileName)
}

// InitLogging sends the standard logger to stderr and to a rotating file in configDir.
// This should be called once during application startup.
func InitLogging(configDir string) error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if _, err := VerifyConfigDirectory(configDir); err != nil {
		return err
	}

	file, err := OpenRotatingFile(LogFilePath(configDir), maxLogSize, maxLogFiles)
	if err != nil {
		return err
	}
	logFile = file

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(io.MultiWriter(os.Stderr, file))

	log.Println("=== Flashlight Logger Initialized ===")
	log.Printf("Log file: %s", file.Path)
	log.Printf("Max size: %d MB", maxLogSize/(1024*1024))
	log.Printf("Max backup files: %d", maxLogFiles)
	return nil
}

// CloseLogging restores stderr logging and closes the log file.
func CloseLogging() {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile == nil {
		return
	}
	log.Println("=== Flashlight Logger Closing ===")
	log.SetOutput(os.Stderr)
	logFile.Close()
	logFile = nil
}
