package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherstack.app/internal/ports"
	"weatherstack.app/pkg/errors"
)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// FileLoggerAdapter appends structured JSON lines to a pipeline event log
type FileLoggerAdapter struct {
	filePath string
	minRank  int
	now      func() time.Time
	mutex    sync.Mutex
}

// FileLoggerParams holds the parameters for creating a file logger
type FileLoggerParams struct {
	Path     string
	MinLevel string
}

// NewFileLoggerAdapter creates a new file logger adapter
func NewFileLoggerAdapter(params FileLoggerParams) (*FileLoggerAdapter, error) {
	if params.Path == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(params.Path), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	minLevel := params.MinLevel
	if minLevel == "" {
		minLevel = "DEBUG"
	}
	rank, ok := levelRank[minLevel]
	if !ok {
		return nil, errors.NewConfigurationError("unknown log level "+minLevel, nil)
	}

	return &FileLoggerAdapter{
		filePath: params.Path,
		minRank:  rank,
		now:      time.Now,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	if levelRank[level] < f.minRank {
		return
	}

	entry := map[string]interface{}{
		"timestamp": f.now().UTC().Format(time.RFC3339),
		"level":     level,
		"message":   msg,
	}
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.appendLine(line)
}

// appendLine must be called with the mutex held
func (f *FileLoggerAdapter) appendLine(line []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
