package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilbuild/anvil/engine/core"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("Should resolve a registered task", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("compile", &got, Variadic("namespaces"))))

		def, err := NewResolver(reg, nil).Resolve("compile", nil)
		require.NoError(t, err)
		assert.Equal(t, "compile", def.Name)
	})

	t.Run("Should partially apply bound alias arguments", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("with-profile", &got, Variadic("task-args", "profile"))))

		def, err := NewResolver(reg, nil).Resolve("with-profile", []string{"offline,dev"})
		require.NoError(t, err)
		require.NoError(t, def.Run(t.Context(), nil, []string{"compile"}))
		assert.Equal(t, []string{"offline,dev", "compile"}, got)
	})

	t.Run("Should fail fatally with suggestions on a miss", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("compile", &got)))
		require.NoError(t, reg.Register(recordingTask("classpath", &got)))

		_, err := NewResolver(reg, nil).Resolve("compiel", nil)
		require.Error(t, err)

		fatal, ok := core.AsFatal(err)
		require.True(t, ok)
		assert.Equal(t, 1, fatal.ExitCode())
		assert.Contains(t, fatal.Message, "'compiel' is not a task. See 'anvil help'.")
		assert.Contains(t, fatal.Message, "Did you mean this?")
		assert.Contains(t, fatal.Message, "\n         compile")
		assert.NotContains(t, fatal.Message, "classpath")
	})

	t.Run("Should omit the suggestion block for unrelated input", func(t *testing.T) {
		reg := NewRegistry()
		var got []string
		require.NoError(t, reg.Register(recordingTask("compile", &got)))

		_, err := NewResolver(reg, nil).Resolve("zzzzzzzzzzzzzzzz", nil)
		require.Error(t, err)

		fatal, ok := core.AsFatal(err)
		require.True(t, ok)
		assert.NotContains(t, fatal.Message, "Did you mean this?")
	})

	t.Run("Should use a custom not-found handler when supplied", func(t *testing.T) {
		reg := NewRegistry()
		handler := func(name string, known []string) error {
			return core.FatalCode(7, "custom miss for %s", name)
		}

		_, err := NewResolver(reg, handler).Resolve("anything", nil)
		fatal, ok := core.AsFatal(err)
		require.True(t, ok)
		assert.Equal(t, 7, fatal.ExitCode())
	})
}
