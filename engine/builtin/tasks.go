package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anvilbuild/anvil/engine/project"
	"github.com/anvilbuild/anvil/engine/task"
	"github.com/anvilbuild/anvil/pkg/version"
)

func versionTask(out io.Writer) *task.Definition {
	return &task.Definition{
		Name:      "version",
		Summary:   "Print the tool version.",
		NoProject: true,
		Shapes:    []task.Shape{task.Fixed()},
		Run: func(context.Context, *project.Project, []string) error {
			info := version.Get()
			fmt.Fprintf(out, "anvil %s (%s, built %s) on %s %s\n",
				info.Version, info.CommitHash, info.BuildDate, runtime.GOOS, runtime.Version())
			return nil
		},
	}
}

func classpathTask(out io.Writer) *task.Definition {
	return &task.Definition{
		Name:    "classpath",
		Summary: "Print the project's source and resource path entries.",
		Shapes:  []task.Shape{task.Fixed()},
		Run: func(_ context.Context, proj *project.Project, _ []string) error {
			entries := make([]string, 0, len(proj.SourcePaths)+len(proj.ResourcePaths)+1)
			for _, p := range proj.SourcePaths {
				entries = append(entries, filepath.Join(proj.Root, p))
			}
			for _, p := range proj.ResourcePaths {
				entries = append(entries, filepath.Join(proj.Root, p))
			}
			entries = append(entries, filepath.Join(proj.Root, proj.TargetPath))
			fmt.Fprintln(out, strings.Join(entries, string(os.PathListSeparator)))
			return nil
		},
	}
}

func depsTask(out io.Writer) *task.Definition {
	return &task.Definition{
		Name:    "deps",
		Summary: "Print the project's declared dependencies.",
		Shapes:  []task.Shape{task.Fixed()},
		Run: func(_ context.Context, proj *project.Project, _ []string) error {
			if len(proj.Dependencies) == 0 {
				fmt.Fprintln(out, "No dependencies declared.")
				return nil
			}
			for _, dep := range proj.Dependencies {
				fmt.Fprintf(out, "%s %s\n", dep.Name, dep.Version)
			}
			return nil
		},
	}
}
