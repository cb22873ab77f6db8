// Package alias resolves raw task tokens through the three alias
// sources: the static built-in table, the loaded project's alias table,
// and (only when no project is loaded) the consumable user profile
// pool.
package alias

import (
	"github.com/anvilbuild/anvil/engine/project"
)

// Invocation is a parsed command invocation: the canonical task token,
// any fixed arguments bound by a multi-token alias, and the remaining
// user-supplied arguments. Bound arguments always precede user
// arguments when the task is applied.
type Invocation struct {
	Task  string
	Bound []string
	Args  []string
}

// Resolver resolves task tokens against the alias sources in priority
// order. The zero value is not usable; construct with NewResolver.
type Resolver struct {
	static map[string]string
	pool   *ProfilePool
}

// NewResolver builds a resolver over the static table and the given
// profile pool. A nil pool disables the profile source.
func NewResolver(pool *ProfilePool) *Resolver {
	return &Resolver{static: StaticAliases, pool: pool}
}

// Resolve maps a raw token to its replacement sequence. Precedence:
// static table, then the project's aliases when a project is loaded,
// then the profile pool when none is. A token with no alias anywhere is
// canonical already and resolves to itself. Resolving through the pool
// consumes the entry, which is irreversible for the process.
func (r *Resolver) Resolve(token string, proj *project.Project) []string {
	if target, ok := r.static[token]; ok {
		return []string{target}
	}
	if proj != nil {
		if value, ok := proj.AliasFor(token); ok && len(value) > 0 {
			return value
		}
		return []string{token}
	}
	if r.pool != nil {
		if value, ok := r.pool.Take(token); ok && len(value) > 0 {
			return value
		}
	}
	return []string{token}
}

// ParseInvocation turns the raw argument vector into an Invocation.
// Two special forms are handled before ordinary resolution: an empty
// vector falls back to the help task, and "<task> --help" (the second
// token being any static alias for help) is rewritten to invoke help
// with the task name as its argument, bypassing alias and task
// resolution for the first token entirely.
func (r *Resolver) ParseInvocation(raw []string, proj *project.Project) Invocation {
	if len(raw) == 0 {
		return Invocation{Task: "help"}
	}
	if len(raw) >= 2 && r.static[raw[1]] == "help" {
		return Invocation{Task: "help", Args: []string{raw[0]}}
	}
	replacement := r.Resolve(raw[0], proj)
	return Invocation{
		Task:  replacement[0],
		Bound: replacement[1:],
		Args:  raw[1:],
	}
}
