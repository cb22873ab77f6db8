package task

import (
	"fmt"
	"strings"

	"github.com/anvilbuild/anvil/engine/core"
	"github.com/anvilbuild/anvil/engine/suggest"
)

// NotFoundHandler builds the error returned when no task matches a
// canonical name. known is the full discovered task list.
type NotFoundHandler func(name string, known []string) error

// Resolver looks up task implementations and adapts curried invocations
// to the task's declared shapes.
type Resolver struct {
	registry *Registry
	notFound NotFoundHandler
}

// NewResolver builds a resolver over the registry. A nil handler uses
// the default: guidance text plus edit-distance suggestions, as a fatal
// error with exit code 1.
func NewResolver(registry *Registry, notFound NotFoundHandler) *Resolver {
	if notFound == nil {
		notFound = NotFoundError
	}
	return &Resolver{registry: registry, notFound: notFound}
}

// Resolve looks up the canonical name and, when the invocation carries
// bound leading arguments from a multi-token alias, returns the
// partially applied definition instead of the raw one.
func (r *Resolver) Resolve(name string, bound []string) (*Definition, error) {
	def, ok := r.registry.Lookup(name)
	if !ok {
		return nil, r.notFound(name, r.registry.Names())
	}
	return def.WithArgs(bound), nil
}

// NotFoundError is the default not-found handler. The message carries
// the guidance line and, when near-matches exist, the "Did you mean
// this?" block with one candidate per line.
func NotFoundError(name string, known []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s' is not a task. See 'anvil help'.", name)
	if matches := suggest.Suggest(name, known); len(matches) > 0 {
		b.WriteString("\n\nDid you mean this?")
		for _, match := range matches {
			b.WriteString("\n         ")
			b.WriteString(match)
		}
	}
	return core.Fatalf("%s", b.String())
}
