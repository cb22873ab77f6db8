package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// FileName is the project file anvil looks for.
const FileName = "anvil.yaml"

var validate = validator.New()

// Find walks upward from dir looking for a project file. It returns the
// file's path, or "" when no project file exists on the path to the
// filesystem root.
func Find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	var proj Project
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	if err := validate.Struct(&proj); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	proj.Root = filepath.Dir(path)
	applyDefaults(&proj)
	return &proj, nil
}

func applyDefaults(proj *Project) {
	if len(proj.SourcePaths) == 0 {
		proj.SourcePaths = []string{"src"}
	}
	if len(proj.ResourcePaths) == 0 {
		proj.ResourcePaths = []string{"resources"}
	}
	if proj.TargetPath == "" {
		proj.TargetPath = "target"
	}
}
