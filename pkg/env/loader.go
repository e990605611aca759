// Package env provides environment variable management for the
// facts CLI, with optional .env file loading.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable
// management.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(filepath string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// GetRequired retrieves a required environment variable
	// or returns an error.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves an environment variable with a
	// default fallback.
	GetWithDefault(key, defaultValue string) string
	// All returns all loaded environment variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support.
// Variables from the process environment take precedence over
// file-loaded values.
type DefaultLoader struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewLoader creates an empty DefaultLoader.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars: make(map[string]string),
	}
}

// Load reads KEY=VALUE pairs from a .env file. Blank lines and
// lines starting with # are skipped. Surrounding quotes on
// values are stripped.
func (l *DefaultLoader) Load(filepath string) error {
	f, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf(
			"failed to open env file %s: %w", filepath, err,
		)
	}
	defer f.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf(
			"failed to read env file %s: %w", filepath, err,
		)
	}
	return nil
}

// Get retrieves a variable, preferring the process
// environment over file-loaded values.
func (l *DefaultLoader) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

// GetRequired retrieves a variable or returns an error when it
// is unset.
func (l *DefaultLoader) GetRequired(
	key string,
) (string, error) {
	if v := l.Get(key); v != "" {
		return v, nil
	}
	return "", fmt.Errorf(
		"required environment variable not set: %s", key,
	)
}

// GetWithDefault retrieves a variable with a fallback.
func (l *DefaultLoader) GetWithDefault(
	key, defaultValue string,
) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

// All returns a copy of the file-loaded variables.
func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		out[k] = v
	}
	return out
}
