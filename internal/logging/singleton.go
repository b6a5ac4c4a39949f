package logging

import (
	"os"
	"sync"
)

var (
	instance  *Logger
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration and builds the process-wide logger.
// It should be called once during startup, before any logger usage.
func Configure(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	logConfig = config
	instance = logger
	return nil
}

// GetLogger returns the process-wide logger. When Configure was never called
// it returns an info-level logger writing to stdout.
func GetLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = NewWriterLogger(os.Stdout, LevelInfo)
	}
	return instance
}
