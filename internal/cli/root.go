// Package cli wires the taskify command line: flags, configuration,
// logging and the interactive program.
package cli

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskify/internal/app"
	"github.com/riordanpawley/taskify/internal/config"
	"github.com/riordanpawley/taskify/internal/domain"
	"github.com/riordanpawley/taskify/internal/logging"
	"github.com/riordanpawley/taskify/internal/store"
	"github.com/spf13/cobra"
)

// ProgramRunner runs the interactive model until it exits
type ProgramRunner func(model tea.Model) error

// RunProgram runs model full screen
func RunProgram(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	version string
	run     ProgramRunner

	configPath string
	logFile    string
	logLevel   string
	demo       bool
}

// NewRootCommand creates the root command. run is called with the
// application model once configuration and logging are set up.
func NewRootCommand(version string, run ProgramRunner) *RootCommand {
	root := &RootCommand{
		version: version,
		run:     run,
	}

	root.cmd = &cobra.Command{
		Use:   "taskify",
		Short: "A terminal to-do list sorted by priority and due date",
		Long: `Taskify keeps a list of tasks, each with a name, a priority and a due date.
Tasks are shown sorted by priority (High, Medium, Low) and then by due date.

KEYS:
  a        add a task
  e/Enter  edit the selected task
  d/x      delete the selected task
  ?        show all keybindings

CONFIGURATION:
  Settings are read from --config, else ./.taskify.toml, else
  taskify/config.toml in the user config directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runApp()
		},
	}

	flags := root.cmd.PersistentFlags()
	flags.StringVar(&root.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&root.logFile, "log-file", "", "write logs to this file (overrides log.file)")
	flags.StringVar(&root.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	root.cmd.Flags().BoolVar(&root.demo, "demo", false, "start with a few sample tasks")

	root.cmd.AddCommand(root.versionCommand(), root.configCommand())

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskify version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskify %s\n", r.version)
		},
	}
}

func (r *RootCommand) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

// loadConfig reads the config file and applies flag overrides
func (r *RootCommand) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if r.configPath != "" {
		cfg, err = config.LoadFile(r.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if r.logFile != "" {
		cfg.Log.File = r.logFile
	}
	if r.logLevel != "" {
		cfg.Log.Level = r.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func (r *RootCommand) runApp() error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.New(logger)
	if r.demo {
		if err := SeedDemo(st); err != nil {
			return fmt.Errorf("failed to seed demo tasks: %w", err)
		}
	}

	logger.Info("starting", "version", r.version, "tasks", st.Len())
	if err := r.run(app.New(cfg, st, logger)); err != nil {
		logger.Error("program exited with error", "error", err)
		return err
	}
	logger.Info("exiting", "tasks", st.Len())
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// demoTasks are relative to today so the sample always looks current
var demoTasks = []struct {
	name     string
	priority string
	days     int
}{
	{"Review pull request", "High", 1},
	{"Fix login bug", "High", 3},
	{"Plan next sprint", "Medium", 5},
	{"Update documentation", "Low", 10},
	{"Clean up old branches", "Low", 14},
}

// SeedDemo adds a handful of sample tasks through the normal Add path
func SeedDemo(st *store.Store) error {
	today := domain.Today()
	for _, t := range demoTasks {
		due := today.AddDate(0, 0, t.days).Format(domain.DateLayout)
		if err := st.Add(t.name, t.priority, due); err != nil {
			return err
		}
	}
	return nil
}
