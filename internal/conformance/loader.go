package conformance

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseVector parses a vector from YAML bytes.
func ParseVector(data []byte) (*Vector, error) {
	var v Vector
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if v.ID == "" {
		return nil, &LoadError{Message: "vector ID is required"}
	}
	if strings.TrimSpace(v.Input) == "" {
		return nil, &LoadError{Message: "vector input is required"}
	}
	for i, s := range v.Steps {
		if s.Action == "" {
			return nil, &LoadError{Message: "step " + strconv.Itoa(i) + " has no action"}
		}
	}

	return &v, nil
}

// LoadVector loads a vector from a file.
func LoadVector(path string) (*Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	v, err := ParseVector(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return v, nil
}

// LoadDirectory loads all vectors below dir. Only files with .yaml or .yml
// extensions are loaded. Vectors are returned sorted by ID; duplicate IDs are
// an error.
func LoadDirectory(dir string) ([]*Vector, error) {
	var vectors []*Vector
	seen := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		v, err := LoadVector(path)
		if err != nil {
			return err
		}
		if prev, ok := seen[v.ID]; ok {
			return &LoadError{File: path, Message: "duplicate vector ID " + v.ID + " (first in " + prev + ")"}
		}
		seen[v.ID] = path
		vectors = append(vectors, v)
		return nil
	})
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{
			File:    dir,
			Message: "failed to walk directory",
			Cause:   err,
		}
	}

	sort.Slice(vectors, func(i, j int) bool { return vectors[i].ID < vectors[j].ID })
	return vectors, nil
}

