package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chronopulse/internal/config"
	"chronopulse/internal/session"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(manager *session.Manager, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(manager, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "chronopulse",
		Short: "A command-line time tracking application",
		Long: `Chronopulse tracks working time as sessions tagged with a project and
an activity.

FEATURES:
  • Start and stop sessions; at most one session runs at a time
  • Backfill closed entries with explicit start and end times
  • Daily and monthly statistics with per-project and per-activity breakdowns
  • Detection of sessions left open on previous days
  • CSV and JSON export
  • Optional PIN gate

EXAMPLES:
  chronopulse start                              # Start with the default project/activity
  chronopulse start -p "Client" -a "Dev" fixing the parser
  chronopulse status                             # Snapshot of the running session
  chronopulse status --watch                     # Live view, updated every second
  chronopulse stop                               # Close the running session
  chronopulse list --month 2024-03               # Entries for March 2024
  chronopulse month                              # Current month summary
  chronopulse unfinished --close                 # Close sessions left open on previous days
  chronopulse export --format csv > march.csv    # Export the current month

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  CHRONO_CONFIG                          Config file path (default: ~/.chronopulse/config.yaml)
  CHRONO_STORAGE_DIR                     Data directory (default: ~/.chronopulse)
  CHRONO_STORAGE_FILENAME                Database filename (default: chronopulse.db)
  CHRONO_STORAGE_WRITE_TIMEOUT           Persistence write timeout (default: 5s)
  CHRONO_TIME_FORMAT                     Clock display layout
  CHRONO_DATE_FORMAT                     Date display layout
  CHRONO_VALIDATION_PIN_LENGTH           Required PIN length (default: 4)
  CHRONO_DEBUG                           Enable debug logging

GETTING HELP:
  chronopulse [command] --help           # Help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs sets the command-line arguments; used by tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// App exposes the underlying application; used by tests.
func (r *RootCommand) App() *App {
	return r.app
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("time-format", "", "Clock display layout (overrides CHRONO_TIME_FORMAT)")
	flags.String("date-format", "", "Date display layout (overrides CHRONO_DATE_FORMAT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides CHRONO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides CHRONO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	startCmd := &cobra.Command{
		Use:   "start [note]",
		Short: "Start a new session",
		Long:  "Start a new session. A running session is closed first, so at most one session is ever open.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			project, _ := cmd.Flags().GetString("project")
			activity, _ := cmd.Flags().GetString("activity")
			return NewStartCommand(r.app).Execute(ctx, project, activity, args)
		},
	}
	startCmd.Flags().StringP("project", "p", "", "Project name (default: first active project)")
	startCmd.Flags().StringP("activity", "a", "", "Activity name (default: first active activity)")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStopCommand(r.app).Execute(ctx)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running session and today's totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				// Watch runs until interrupted
				return NewStatusCommand(r.app).Execute(cmd.Context(), true)
			}
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatusCommand(r.app).Execute(ctx, false)
		},
	}
	statusCmd.Flags().BoolP("watch", "w", false, "Refresh the status every second")

	addCmd := &cobra.Command{
		Use:   "add [note]",
		Short: "Add a closed entry with explicit times",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			project, _ := cmd.Flags().GetString("project")
			activity, _ := cmd.Flags().GetString("activity")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			return NewAddCommand(r.app).Execute(ctx, project, activity, start, end, args)
		},
	}
	addCmd.Flags().StringP("project", "p", "", "Project name (default: first active project)")
	addCmd.Flags().StringP("activity", "a", "", "Activity name (default: first active activity)")
	addCmd.Flags().String("start", "", "Start time, e.g. \"2024-03-05 09:00\"")
	addCmd.Flags().String("end", "", "End time, e.g. \"2024-03-05 17:30\"")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")

	deleteCmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			month, _ := cmd.Flags().GetString("month")
			project, _ := cmd.Flags().GetString("project")
			activity, _ := cmd.Flags().GetString("activity")
			return NewListCommand(r.app).Execute(ctx, month, project, activity)
		},
	}
	listCmd.Flags().StringP("month", "m", "", "Month as YYYY-MM (default: current month)")
	listCmd.Flags().StringP("project", "p", "", "Filter by project name")
	listCmd.Flags().StringP("activity", "a", "", "Filter by activity name")

	dayCmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show one day's statistics and entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			dateArg := ""
			if len(args) == 1 {
				dateArg = args[0]
			}
			return NewDayCommand(r.app).Execute(ctx, dateArg)
		},
	}

	monthCmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show one month's statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			monthArg := ""
			if len(args) == 1 {
				monthArg = args[0]
			}
			return NewMonthCommand(r.app).Execute(ctx, monthArg)
		},
	}

	unfinishedCmd := &cobra.Command{
		Use:   "unfinished",
		Short: "Show sessions left open on previous days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			closeAll, _ := cmd.Flags().GetBool("close")
			return NewUnfinishedCommand(r.app).Execute(ctx, closeAll)
		},
	}
	unfinishedCmd.Flags().Bool("close", false, "Close all unfinished sessions now")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export one month of entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			month, _ := cmd.Flags().GetString("month")
			format, _ := cmd.Flags().GetString("format")
			project, _ := cmd.Flags().GetString("project")
			activity, _ := cmd.Flags().GetString("activity")
			return NewExportCommand(r.app).Execute(ctx, month, format, project, activity)
		},
	}
	exportCmd.Flags().StringP("month", "m", "", "Month as YYYY-MM (default: current month)")
	exportCmd.Flags().StringP("format", "f", "csv", "Output format: csv or json")
	exportCmd.Flags().StringP("project", "p", "", "Filter by project name")
	exportCmd.Flags().StringP("activity", "a", "", "Filter by activity name")

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Record a backup of the data store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewBackupCommand(r.app).Execute(ctx)
		},
	}

	r.cmd.AddCommand(
		startCmd,
		stopCmd,
		statusCmd,
		addCmd,
		deleteCmd,
		listCmd,
		dayCmd,
		monthCmd,
		unfinishedCmd,
		exportCmd,
		backupCmd,
		r.projectCommand(),
		r.activityCommand(),
		r.pinCommand(),
	)
}

func (r *RootCommand) projectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewProjectCommand(r.app).Add(ctx, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewProjectCommand(r.app).List(ctx)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename or deactivate a project",
		Long:  "Rename a project or flip its active flag. Projects referenced by entries are deactivated, never deleted.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			inactive, _ := cmd.Flags().GetBool("inactive")
			return NewProjectCommand(r.app).Update(ctx, args[0], args[1], !inactive)
		},
	}
	updateCmd.Flags().Bool("inactive", false, "Deactivate the project")

	projectCmd.AddCommand(addCmd, listCmd, updateCmd)
	return projectCmd
}

func (r *RootCommand) activityCommand() *cobra.Command {
	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewActivityCommand(r.app).Add(ctx, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewActivityCommand(r.app).List(ctx)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename or deactivate an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			inactive, _ := cmd.Flags().GetBool("inactive")
			return NewActivityCommand(r.app).Update(ctx, args[0], args[1], !inactive)
		},
	}
	updateCmd.Flags().Bool("inactive", false, "Deactivate the activity")

	activityCmd.AddCommand(addCmd, listCmd, updateCmd)
	return activityCmd
}

func (r *RootCommand) pinCommand() *cobra.Command {
	pinCmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the PIN gate",
	}

	setCmd := &cobra.Command{
		Use:   "set <pin> <confirm>",
		Short: "Enable the PIN gate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewPINCommand(r.app).Set(ctx, args[0], args[1])
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <pin>",
		Short: "Check a PIN against the stored one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewPINCommand(r.app).Check(ctx, args[0])
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <pin>",
		Short: "Disable the PIN gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewPINCommand(r.app).Remove(ctx, args[0])
		},
	}

	pinCmd.AddCommand(setCmd, checkCmd, removeCmd)
	return pinCmd
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Display.DateFormat = dateFormat
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
