// Package builtin registers the tasks that ship with the tool. They are
// deliberately thin; the interesting machinery is resolution and
// dispatch, not the tasks themselves.
package builtin

import (
	"io"

	"github.com/anvilbuild/anvil/engine/task"
)

// Register installs the built-in tasks into the registry. Task output
// is written to out.
func Register(reg *task.Registry, out io.Writer) {
	reg.MustRegister(helpTask(reg, out))
	reg.MustRegister(versionTask(out))
	reg.MustRegister(classpathTask(out))
	reg.MustRegister(depsTask(out))
}
