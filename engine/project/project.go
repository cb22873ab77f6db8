// Package project models the anvil.yaml project file: identity,
// declared paths and dependencies, and the project-level alias table.
package project

import (
	"fmt"

	"github.com/google/shlex"
)

// Alias is the replacement for an aliased task token: the canonical
// task token followed by any fixed leading arguments. In YAML an alias
// may be written either as a sequence of tokens or as a single string,
// which is split shell-style.
type Alias []string

// UnmarshalYAML accepts both the scalar and the sequence form.
func (a *Alias) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		tokens, err := shlex.Split(single)
		if err != nil {
			return fmt.Errorf("invalid alias %q: %w", single, err)
		}
		*a = tokens
		return nil
	}
	var many []string
	if err := unmarshal(&many); err != nil {
		return fmt.Errorf("alias must be a string or a list of strings: %w", err)
	}
	*a = many
	return nil
}

// Dependency is a declared dependency coordinate.
type Dependency struct {
	Name    string `yaml:"name"    validate:"required"`
	Version string `yaml:"version" validate:"required"`
}

// Project is a loaded project file. Consumers treat it as read-only:
// derived variants are produced by copying, never by mutating a shared
// instance.
type Project struct {
	Name          string           `yaml:"name"           validate:"required"`
	Version       string           `yaml:"version"`
	MinVersion    string           `yaml:"min_version"`
	SourcePaths   []string         `yaml:"source_paths"`
	ResourcePaths []string         `yaml:"resource_paths"`
	TargetPath    string           `yaml:"target_path"`
	Dependencies  []Dependency     `yaml:"dependencies"   validate:"dive"`
	Aliases       map[string]Alias `yaml:"aliases"`

	// Root is the directory containing the project file.
	Root string `yaml:"-"`
}

// AliasFor returns a copy of the alias expansion for the given token.
func (p *Project) AliasFor(token string) (Alias, bool) {
	value, ok := p.Aliases[token]
	if !ok {
		return nil, false
	}
	out := make(Alias, len(value))
	copy(out, value)
	return out, true
}

// WithoutAlias returns a derived project whose alias table omits every
// entry whose replacement is exactly the given task token. This is the
// anti-recursion guard used by dispatch: it removes only the alias that
// directly produced the current invocation. It does not detect longer
// alias cycles (A -> B -> C -> A).
func (p *Project) WithoutAlias(task string) *Project {
	derived := *p
	derived.Aliases = make(map[string]Alias, len(p.Aliases))
	for key, value := range p.Aliases {
		if len(value) == 1 && value[0] == task {
			continue
		}
		derived.Aliases[key] = value
	}
	return &derived
}
