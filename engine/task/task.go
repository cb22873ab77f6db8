// Package task defines the task descriptor, the registry tasks are
// looked up in, and arity-aware partial application for aliased
// invocations.
package task

import (
	"context"

	"github.com/anvilbuild/anvil/engine/project"
)

// RunFunc is a task implementation. The project is nil when no project
// file is loaded; args are the task's own arguments, already past alias
// resolution.
type RunFunc func(ctx context.Context, proj *project.Project, args []string) error

// Definition describes a registered task. Definitions are immutable
// once registered; partial application produces a derived copy, never
// an in-place edit.
type Definition struct {
	// Name is the canonical, possibly namespaced task name.
	Name string
	// Summary is the one-line description shown in task listings.
	Summary string
	// Help is the longer help text shown by the help task.
	Help string
	// Shapes are the declared parameter-list forms. Registration
	// normalizes a missing declaration to a single zero-argument form;
	// a derived partial application may end up with none, in which
	// case no argument count matches.
	Shapes []Shape
	// NoProject marks a task that can run without a loaded project.
	NoProject bool
	// Hidden excludes the task from discovery listings and
	// suggestions. Used for internal namespaces.
	Hidden bool
	// Run is the implementation.
	Run RunFunc
}

// MatchShape returns the first declared shape compatible with an
// invocation carrying n arguments.
func (d *Definition) MatchShape(n int) (Shape, bool) {
	for _, shape := range d.Shapes {
		if shape.Matches(n) {
			return shape, true
		}
	}
	return Shape{}, false
}

// ShapeStrings renders every declared shape, for arity error messages.
func (d *Definition) ShapeStrings() []string {
	out := make([]string, len(d.Shapes))
	for i, shape := range d.Shapes {
		out[i] = shape.String()
	}
	return out
}

// WithArgs produces a partial application of the task: a derived
// definition whose Run prepends the bound arguments to whatever the
// caller later supplies, and whose shapes have the bound count of
// leading fixed slots dropped. Fixed shapes that cannot absorb the
// bound prefix disappear from the derived definition; a variadic shape
// clamps at its marker and keeps accepting any argument count.
func (d *Definition) WithArgs(bound []string) *Definition {
	if len(bound) == 0 {
		return d
	}
	derived := *d
	derived.Shapes = nil
	for _, shape := range d.Shapes {
		if dropped, ok := shape.Drop(len(bound)); ok {
			derived.Shapes = append(derived.Shapes, dropped)
		}
	}
	prefix := make([]string, len(bound))
	copy(prefix, bound)
	run := d.Run
	derived.Run = func(ctx context.Context, proj *project.Project, args []string) error {
		full := make([]string, 0, len(prefix)+len(args))
		full = append(full, prefix...)
		full = append(full, args...)
		return run(ctx, proj, full)
	}
	return &derived
}
