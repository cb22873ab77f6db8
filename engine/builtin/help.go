package builtin

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anvilbuild/anvil/engine/project"
	"github.com/anvilbuild/anvil/engine/task"
)

func helpTask(reg *task.Registry, out io.Writer) *task.Definition {
	return &task.Definition{
		Name:      "help",
		Summary:   "Show help for the tool or for a task.",
		Help:      "With no arguments, lists every available task. With a task name, shows that task's help text and argument forms.",
		NoProject: true,
		Shapes: []task.Shape{
			task.Fixed(),
			task.Fixed("task"),
		},
		Run: func(_ context.Context, _ *project.Project, args []string) error {
			if len(args) == 0 {
				return listTasks(reg, out)
			}
			return taskHelp(reg, out, args[0])
		},
	}
}

func listTasks(reg *task.Registry, out io.Writer) error {
	fmt.Fprintln(out, "Usage: anvil TASK [ARGS]...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available tasks:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range reg.Names() {
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\n", name, def.Summary)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'anvil help TASK' for details.")
	return nil
}

func taskHelp(reg *task.Registry, out io.Writer, name string) error {
	def, ok := reg.Lookup(name)
	if !ok {
		return task.NotFoundError(name, reg.Names())
	}
	fmt.Fprintf(out, "%s\n", def.Name)
	if def.Summary != "" {
		fmt.Fprintf(out, "  %s\n", def.Summary)
	}
	if def.Help != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, def.Help)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Argument forms:")
	for _, shape := range def.ShapeStrings() {
		fmt.Fprintf(out, "  %s\n", shape)
	}
	return nil
}
