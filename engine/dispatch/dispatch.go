// Package dispatch turns raw command-line arguments into exactly one
// task invocation: alias resolution, task lookup, precondition and
// arity checks, and finally the call itself. Dispatch is strictly
// linear; nothing is retried and a task runs at most once per call.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/anvilbuild/anvil/engine/alias"
	"github.com/anvilbuild/anvil/engine/core"
	"github.com/anvilbuild/anvil/engine/project"
	"github.com/anvilbuild/anvil/engine/task"
	"github.com/anvilbuild/anvil/pkg/logger"
	"github.com/anvilbuild/anvil/pkg/version"
)

// Dispatcher wires the alias resolver and the task resolver together.
type Dispatcher struct {
	aliases  *alias.Resolver
	resolver *task.Resolver
}

// New builds a dispatcher. notFound may be nil to use the default
// guidance-plus-suggestions handler.
func New(registry *task.Registry, aliases *alias.Resolver, notFound task.NotFoundHandler) *Dispatcher {
	return &Dispatcher{
		aliases:  aliases,
		resolver: task.NewResolver(registry, notFound),
	}
}

// Run parses the raw argument vector and dispatches the resulting
// invocation.
func (d *Dispatcher) Run(ctx context.Context, proj *project.Project, raw []string) error {
	return d.Dispatch(ctx, proj, d.aliases.ParseInvocation(raw, proj))
}

// Dispatch executes a parsed invocation. Steps, in order: derive the
// anti-recursion project copy, warn on a stale tool version, resolve
// the implementation, enforce the project precondition, validate arity,
// invoke.
func (d *Dispatcher) Dispatch(ctx context.Context, proj *project.Project, inv alias.Invocation) error {
	log := logger.FromContext(ctx)
	if proj != nil {
		// Remove the one alias that produced this invocation so a task
		// re-entering dispatch cannot trigger it again. Longer alias
		// cycles (A -> B -> C -> A) are not detected.
		proj = proj.WithoutAlias(inv.Task)
		warnVersion(log, proj)
	}
	def, err := d.resolver.Resolve(inv.Task, inv.Bound)
	if err != nil {
		return err
	}
	if proj == nil && !def.NoProject {
		return core.Fatalf("project file is required for task '%s'", inv.Task)
	}
	if _, ok := def.MatchShape(len(inv.Args)); !ok {
		return arityError(inv.Task, def)
	}
	log.Debug("dispatching task", "task", inv.Task, "bound", len(inv.Bound), "args", len(inv.Args))
	if err := def.Run(ctx, proj, inv.Args); err != nil {
		if _, ok := core.AsFatal(err); ok {
			return err
		}
		return fmt.Errorf("task '%s' failed: %w", inv.Task, err)
	}
	return nil
}

func arityError(name string, def *task.Definition) error {
	shapes := def.ShapeStrings()
	if len(shapes) == 0 {
		return core.Fatalf("wrong number of arguments to task '%s' (no argument form matches)", name)
	}
	return core.Fatalf(
		"wrong number of arguments to task '%s' (expects %s)",
		name, strings.Join(shapes, " or "),
	)
}

func warnVersion(log logger.Logger, proj *project.Project) {
	if proj.MinVersion == "" {
		return
	}
	ok, err := version.Satisfies(proj.MinVersion)
	if err != nil {
		log.Warn("could not check the project's min_version", "error", err)
		return
	}
	if !ok {
		log.Warn("this project requires a newer anvil",
			"required", proj.MinVersion, "running", version.GetVersion())
	}
}
