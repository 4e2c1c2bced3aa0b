package cli

import (
	"context"

	"github.com/spf13/cobra"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/logging"
)

// NewRootCommand creates the todo command. It takes no arguments and runs the
// interactive shell.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "An interactive command-line to-do list",
		Long: `todo is an interactive to-do list manager. It shows a numbered menu for
creating, listing, editing, completing and deleting tasks, and saves the
list when you choose Exit or close the input.

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file:
    TODO_CONFIG                            TOML config file (default: .todo.toml if present)

  Storage:
    TODO_STORAGE                           Storage backend, json or sqlite (default: json)
    TODO_FILE                              Data file (default: tasks.json, or tasks.db for sqlite)

  Diagnostics:
    TODO_DEBUG                             Enable debug output on stderr (default: false)
    TODO_LOG_LEVEL                         Log level: debug, info, warn, error, fatal (default: info)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}

	addGlobalFlags(cmd)
	return cmd
}

// Execute runs the root command with a background context
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String("config", "", "TOML config file (overrides TODO_CONFIG)")
	flags.String("file", "", "Data file (overrides TODO_FILE)")
	flags.String("storage", "", "Storage backend: json or sqlite (overrides TODO_STORAGE)")
	flags.Bool("debug", false, "Enable debug output (overrides TODO_DEBUG)")
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		overrides.ConfigFile = &v
	}
	if flags.Changed("file") {
		v, _ := flags.GetString("file")
		overrides.StoragePath = &v
	}
	if flags.Changed("storage") {
		v, _ := flags.GetString("storage")
		overrides.StorageBackend = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}

	return overrides
}

func runShell(cmd *cobra.Command, _ []string) error {
	eh := NewErrorHandler()

	cfg, err := config.NewLoader().LoadWithOverrides(overridesFromFlags(cmd))
	if err != nil {
		return eh.Handle("load configuration", err)
	}

	if err := logging.Configure(logging.Options{
		Debug:  cfg.Logging.Debug,
		Level:  cfg.Logging.Level,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return eh.Handle("configure logging", err)
	}
	logging.Debugf("storage: backend=%s path=%s", cfg.Storage.Backend, cfg.GetStoragePath())

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return eh.Handle("open storage", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logging.Logger().Warn("closing storage failed", "err", err)
		}
	}()

	list := domain.NewTaskListWithActivity(logging.NewActivityLog(cmd.OutOrStdout()))
	return NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), list, repo).Run(cmd.Context())
}
