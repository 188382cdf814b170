// Package cmd provides the command-line interface for the jiradash tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/danielolaszy/jiradash/internal/config"
	"github.com/danielolaszy/jiradash/internal/dashboard"
	"github.com/danielolaszy/jiradash/internal/jira"
	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/danielolaszy/jiradash/internal/session"
	"github.com/danielolaszy/jiradash/internal/storage"
	"github.com/spf13/cobra"
)

// app carries the dependencies shared by all commands. It is built once per
// invocation in PersistentPreRunE and handed to each command explicitly.
type app struct {
	configFile string
	dataDir    string
	logLevel   string

	config  *config.Config
	logFile *os.File
	storage storage.Storage
	session *session.Store
	client  *jira.Client
}

func newRootCommand() (*cobra.Command, *app) {
	// Run every persistent pre-run from the root down, so command groups
	// with their own hooks still get the root setup
	cobra.EnableTraverseRunHooks = true

	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jiradash",
		Short: "Jiradash shows your Jira projects and issues in the terminal",
		Long: `Jiradash signs you in to a Jira instance and shows the projects and issues
assigned to or reported by you.

The tracker cannot be queried directly from this client, so projects and issues
are sample data served after a short simulated delay. Your session is kept in
the data directory and restored on the next run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding the persisted session (default ~/.jiradash)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newAuthHeaderCommand(a),
		newDashboardCommand(a),
		newProjectsCommand(a),
		newIssuesCommand(a),
	)

	return rootCmd, a
}

// Execute builds the command tree, runs it and releases its resources.
func Execute() error {
	rootCmd, a := newRootCommand()
	defer a.close()
	return rootCmd.Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]any{}
	if cmd.Flags().Changed("data-dir") {
		overrides["data_dir"] = a.dataDir
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log.level"] = a.logLevel
	}

	cfg, err := config.LoadConfig(config.Options{File: a.configFile, Overrides: overrides})
	if err != nil {
		return err
	}
	a.config = cfg

	var logOut io.Writer = cmd.ErrOrStderr()
	if cfg.Log.File {
		f, err := logging.OpenLogFile(cfg.DataDir, "jiradash", time.Now())
		if err != nil {
			return err
		}
		a.logFile = f
		logOut = io.MultiWriter(logOut, f)
	}
	logging.Setup(logOut, logging.LogLevel(cfg.Log.Level), logging.Format(cfg.Log.Format))
	logging.Debug("configuration loaded",
		"data_dir", cfg.DataDir,
		"storage", cfg.Storage.Backend,
		"login_delay", cfg.Delays.Login)

	st, err := storage.Open(cfg.Storage.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.storage = st

	a.session = session.NewStore(cmd.Context(), st, session.WithLoginDelay(cfg.Delays.Login))
	a.client = jira.NewClient(a.session, jira.WithDelays(jira.Delays{
		Projects: cfg.Delays.Projects,
		Assigned: cfg.Delays.Assigned,
		Reported: cfg.Delays.Reported,
	}))

	return nil
}

func (a *app) close() {
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			logging.Error("failed to close storage", "error", err)
		}
		a.storage = nil
	}
	if a.logFile != nil {
		// Later log lines must not reach the closed file
		logging.Setup(os.Stderr, logging.LogLevel(a.config.Log.Level), logging.Format(a.config.Log.Format))
		a.logFile.Close()
		a.logFile = nil
	}
}

// waitRestored blocks until the persisted session has been replayed.
func (a *app) waitRestored(ctx context.Context) error {
	select {
	case <-a.session.Restored():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// requireSession waits for the restore and fails when nobody is signed in.
func (a *app) requireSession(ctx context.Context) error {
	if err := a.waitRestored(ctx); err != nil {
		return err
	}
	if !a.session.IsAuthenticated() {
		return dashboard.ErrNotAuthenticated
	}
	return nil
}
