package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger with the given configuration.
// It must be called once at startup before GetLogger.
func InitLogger(config *Config) error {
	mu.Lock()
	defer mu.Unlock()

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}
	instance = logger
	return nil
}

// GetLogger returns the global logger instance.
// Falls back to a stderr-less default if InitLogger was never called,
// which keeps tests working without a log file on disk.
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
		instance = newDiscardLogger()
	}
	return instance
}
