package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/tabchat/internal/app"
	"github.com/henri123lemoine/tabchat/internal/config"
	"github.com/henri123lemoine/tabchat/internal/debug"
	"github.com/henri123lemoine/tabchat/internal/transcript"
)

var version = "0.1.0"

type options struct {
	configPath string
	debugPath  string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tabchat",
		Short: "A tabbed terminal chat pad",
		Long: `tabchat is a small terminal UI with four tabs. The first tab holds a
message log and an input line: press e to start typing, enter to post,
esc to stop editing, and q to quit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is "+config.ConfigPath()+")")
	rootCmd.Flags().StringVar(&opts.debugPath, "debug", "", "write a debug log to this file")
	rootCmd.Flags().Lookup("debug").NoOptDefVal = config.DebugLogPath()

	rootCmd.AddCommand(NewConfigCmd(opts))

	return rootCmd
}

func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFromPath(opts.configPath)
	}
	return config.Load()
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.debugPath != "" {
		if err := debug.Enable(opts.debugPath); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	printWarnings(cmd.ErrOrStderr(), cfg.Validate())

	recorder, history, err := openTranscript(cfg)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	model := app.New(cfg, recorder, history)
	p := tea.NewProgram(model, programOpts...)

	done := debug.Timed("session")
	defer done()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// openTranscript returns a nil Recorder when no history file is configured.
func openTranscript(cfg *config.Config) (app.Recorder, []string, error) {
	if cfg.History.File == "" {
		return nil, nil, nil
	}

	store, err := transcript.Open(cfg.History.File)
	if err != nil {
		return nil, nil, fmt.Errorf("opening transcript: %w", err)
	}

	var history []string
	if cfg.History.Restore {
		history, err = store.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("restoring transcript: %w", err)
		}
		debug.Log("restored %d lines from %s", len(history), store.Path())
	}

	return store, history, nil
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}
