// Package loader reads person records from the filesystem. It owns no
// translation logic; it hands raw records to the tree package.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kinview/pkg/gedcom"
	"kinview/pkg/model"
)

// Source is a reloadable origin of person records. The viewer's refresh
// entry point calls Load again after an external edit.
type Source interface {
	Load() ([]model.RawPerson, error)
	// Path returns the filesystem path backing the source, for the
	// change watcher.
	Path() string
}

// FileSource loads people from a JSON, JSONL, or GEDCOM file, picked by
// extension.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. An empty path resolves to
// people.json in the current working directory.
func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		path = filepath.Join(wd, "people.json")
	}
	return &FileSource{path: path}, nil
}

// Path implements Source.
func (s *FileSource) Path() string { return s.path }

// Load implements Source.
func (s *FileSource) Load() ([]model.RawPerson, error) {
	return LoadPeople(s.path)
}

// LoadPeople reads person records from path. Supported formats:
// .json (array of records), .jsonl (one record per line), .ged/.gedcom.
func LoadPeople(path string) ([]model.RawPerson, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no people file found at %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return loadJSONL(path)
	case ".ged", ".gedcom":
		people, _, err := gedcom.ImportFile(path)
		return people, err
	default:
		return loadJSON(path)
	}
}

func loadJSON(path string) ([]model.RawPerson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people file: %w", err)
	}
	var people []model.RawPerson
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("failed to parse people file: %w", err)
	}
	return people, nil
}

func loadJSONL(path string) ([]model.RawPerson, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open people file: %w", err)
	}
	defer file.Close()

	var people []model.RawPerson
	scanner := bufio.NewScanner(file)
	// Records with long notes can exceed the default line buffer.
	const maxCapacity = 1024 * 1024 * 10 // 10MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p model.RawPerson
		if err := json.Unmarshal(line, &p); err != nil {
			// Skip malformed lines but keep loading the rest.
			continue
		}
		people = append(people, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading people file: %w", err)
	}
	return people, nil
}
