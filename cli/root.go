// Package cli is the cobra surface of the tool: flag handling,
// bootstrap of configuration, logging, the profile-alias pool and the
// project file, and the hand-off to the dispatcher.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anvilbuild/anvil/engine/alias"
	"github.com/anvilbuild/anvil/engine/builtin"
	"github.com/anvilbuild/anvil/engine/dispatch"
	"github.com/anvilbuild/anvil/engine/project"
	"github.com/anvilbuild/anvil/engine/task"
	"github.com/anvilbuild/anvil/pkg/config"
	"github.com/anvilbuild/anvil/pkg/logger"
	"github.com/anvilbuild/anvil/pkg/version"
)

// rootCmd builds the root command. Flag parsing stops at the first
// positional argument so task arguments, including ones that look like
// flags, reach the dispatcher untouched.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "anvil TASK [ARGS]...",
		Short:         "anvil is a build tool: it resolves a task name and runs it",
		Version:       version.GetVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runRoot,
	}
	root.Flags().SetInterspersed(false)
	root.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.Flags().Bool("log-json", false, "Log in JSON format")
	root.Flags().Bool("log-source", false, "Log source positions")
	root.Flags().Bool("debug", false, "Print full diagnostics for unexpected errors")
	root.Flags().String("env-file", "", "Load environment variables from a file before anything else")
	root.Flags().StringP("file", "f", "", "Path to the project file (default: nearest anvil.yaml)")
	root.Flags().Bool("no-project", false, "Ignore any project file")
	return root
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if err := loadEnvFile(cmd); err != nil {
		return err
	}
	cfg, err := config.NewLoader().Load(config.DefaultConfigPath())
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	a.debug = cfg.CLI.Debug
	if err := logger.SetupLogger(cfg.CLI.LogLevel, cfg.CLI.LogJSON, cfg.CLI.LogSource); err != nil {
		return err
	}
	ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())
	log := logger.FromContext(ctx)

	proj, err := loadProject(cmd)
	if err != nil {
		return err
	}
	var pool *alias.ProfilePool
	if proj == nil {
		// Profile aliases only apply outside a project.
		pool, err = alias.LoadProfiles(cfg.CLI.ProfilesPath)
		if err != nil {
			return err
		}
		log.Debug("loaded profile aliases", "count", pool.Len())
	}

	registry := task.NewRegistry()
	builtin.Register(registry, cmd.OutOrStdout())

	d := dispatch.New(registry, alias.NewResolver(pool), nil)
	return d.Run(ctx, proj, args)
}

// applyFlagOverrides lets explicitly set flags win over the file/env
// configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("log-level") {
		cfg.CLI.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-json") {
		cfg.CLI.LogJSON, _ = cmd.Flags().GetBool("log-json")
	}
	if cmd.Flags().Changed("log-source") {
		cfg.CLI.LogSource, _ = cmd.Flags().GetBool("log-source")
	}
	if cmd.Flags().Changed("debug") {
		cfg.CLI.Debug, _ = cmd.Flags().GetBool("debug")
	}
}

// loadEnvFile loads environment variables from the --env-file path, if
// given, before configuration is resolved.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		return nil
	}
	absPath, err := filepath.Abs(filepath.Clean(envFile))
	if err != nil {
		return fmt.Errorf("failed to resolve env file path: %w", err)
	}
	if err := godotenv.Load(absPath); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return nil
}

// loadProject locates and loads the project file: the --file flag wins,
// otherwise the nearest anvil.yaml above the working directory is used.
// It returns nil when there is no project (or --no-project is set);
// tasks that require one fail later in dispatch.
func loadProject(cmd *cobra.Command) (*project.Project, error) {
	if noProject, _ := cmd.Flags().GetBool("no-project"); noProject {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, fmt.Errorf("failed to get file flag: %w", err)
	}
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path, err = project.Find(cwd)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, nil
		}
	}
	return project.Load(path)
}
