package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a fact bank from a YAML or JSON file, chosen
// by extension. The loaded bank is validated before it is
// returned.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read bank file %s: %w", path, err,
		)
	}

	var file File
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(
				"failed to parse bank file %s: %w",
				path, err,
			)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(
				"failed to parse bank file %s: %w",
				path, err,
			)
		}
	}

	if errs := Validate(&file); len(errs) > 0 {
		return nil, fmt.Errorf(
			"invalid bank file %s: %w", path, errs[0],
		)
	}
	return &file, nil
}

// LoadDir loads all .json and .yaml/.yml bank files from a
// directory, in lexical order. It does not recurse into
// subdirectories.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(
			filepath.Ext(entry.Name()),
		)
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		file, err := LoadFile(
			filepath.Join(dir, entry.Name()),
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
