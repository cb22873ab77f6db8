package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilbuild/anvil/engine/project"
)

func recordingTask(name string, got *[]string, shapes ...Shape) *Definition {
	return &Definition{
		Name:   name,
		Shapes: shapes,
		Run: func(_ context.Context, _ *project.Project, args []string) error {
			*got = append([]string{}, args...)
			return nil
		},
	}
}

func TestDefinition_WithArgs(t *testing.T) {
	t.Run("Should prepend bound arguments on invocation", func(t *testing.T) {
		var got []string
		def := recordingTask("with-profile", &got, Variadic("task-args", "profile"))

		partial := def.WithArgs([]string{"offline,dev"})
		require.NoError(t, partial.Run(t.Context(), nil, []string{"compile", "fast"}))

		assert.Equal(t, []string{"offline,dev", "compile", "fast"}, got)
	})

	t.Run("Should drop leading fixed slots from the exposed shapes", func(t *testing.T) {
		var got []string
		def := recordingTask("copy", &got, Fixed("from", "to"))

		partial := def.WithArgs([]string{"here"})

		shape, ok := partial.MatchShape(1)
		require.True(t, ok)
		assert.Equal(t, []string{"to"}, shape.Params)
		_, ok = partial.MatchShape(2)
		assert.False(t, ok)
	})

	t.Run("Should become all-accepting past a variadic marker", func(t *testing.T) {
		var got []string
		def := recordingTask("run", &got, Variadic("args", "main"))

		partial := def.WithArgs([]string{"core.main", "extra"})

		for _, n := range []int{0, 1, 4} {
			_, ok := partial.MatchShape(n)
			assert.True(t, ok, "expected %d args to match", n)
		}
	})

	t.Run("Should drop fixed shapes the bound prefix overruns", func(t *testing.T) {
		var got []string
		def := recordingTask("mixed", &got, Fixed("a"), Variadic("rest", "a", "b"))

		partial := def.WithArgs([]string{"x", "y"})

		require.Len(t, partial.Shapes, 1)
		assert.True(t, partial.Shapes[0].Variadic)
	})

	t.Run("Should return the definition unchanged with no bound args", func(t *testing.T) {
		var got []string
		def := recordingTask("noop", &got, Fixed())
		assert.Same(t, def, def.WithArgs(nil))
	})

	t.Run("Should not mutate the original definition", func(t *testing.T) {
		var got []string
		def := recordingTask("copy", &got, Fixed("from", "to"))

		def.WithArgs([]string{"here"})

		shape, ok := def.MatchShape(2)
		require.True(t, ok)
		assert.Equal(t, []string{"from", "to"}, shape.Params)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("Should register and look up a task", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("compile", &got, Variadic("namespaces"))))

		def, ok := reg.Lookup("compile")
		require.True(t, ok)
		assert.Equal(t, "compile", def.Name)
	})

	t.Run("Should reject duplicates and incomplete definitions", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("compile", &got)))

		assert.Error(t, reg.Register(recordingTask("compile", &got)))
		assert.Error(t, reg.Register(nil))
		assert.Error(t, reg.Register(&Definition{Name: "norun"}))
		assert.Error(t, reg.Register(&Definition{Run: func(context.Context, *project.Project, []string) error { return nil }}))
	})

	t.Run("Should default a missing shape declaration to zero-arg", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("noop", &got)))

		def, _ := reg.Lookup("noop")
		_, ok := def.MatchShape(0)
		assert.True(t, ok)
		_, ok = def.MatchShape(1)
		assert.False(t, ok)
	})

	t.Run("Should list names sorted and without hidden tasks", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("test", &got)))
		require.NoError(t, reg.Register(recordingTask("compile", &got)))
		hidden := recordingTask("internal.bootstrap", &got)
		hidden.Hidden = true
		require.NoError(t, reg.Register(hidden))

		assert.Equal(t, []string{"compile", "test"}, reg.Names())
	})
}
