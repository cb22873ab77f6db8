package alias

import (
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/anvilbuild/anvil/engine/project"
)

// ProfilePool holds user-level aliases loaded once at process start.
// Unlike the static and project sources, the pool is consumable: taking
// a key removes it, so the same key resolves through the pool at most
// once per process lifetime. The pool is owned by the process-level
// bootstrap and passed into the resolver by pointer.
type ProfilePool struct {
	mu      sync.Mutex
	aliases map[string]project.Alias
}

// NewProfilePool builds a pool over the given aliases. The map is
// copied; the caller's map is not retained.
func NewProfilePool(aliases map[string]project.Alias) *ProfilePool {
	pool := &ProfilePool{aliases: make(map[string]project.Alias, len(aliases))}
	for key, value := range aliases {
		pool.aliases[key] = value
	}
	return pool
}

// Take removes and returns the alias for key. The lookup and removal
// are a single operation under the pool's lock; a taken key is gone for
// the rest of the process.
func (p *ProfilePool) Take(key string) (project.Alias, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	value, ok := p.aliases[key]
	if !ok {
		return nil, false
	}
	delete(p.aliases, key)
	return value, true
}

// Len reports how many aliases remain in the pool.
func (p *ProfilePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.aliases)
}

// profilesFile is the on-disk shape of the user profiles file.
type profilesFile struct {
	Aliases map[string]project.Alias `yaml:"aliases"`
}

// LoadProfiles reads the user profiles file into a fresh pool. A
// missing file yields an empty pool; a malformed one is an error.
func LoadProfiles(path string) (*ProfilePool, error) {
	if path == "" {
		return NewProfilePool(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProfilePool(nil), nil
		}
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}
	var parsed profilesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", path, err)
	}
	return NewProfilePool(parsed.Aliases), nil
}
