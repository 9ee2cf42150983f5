// Package cmd wires the command line surface.
package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/relayhq/relay-tui/internal/app"
	"github.com/relayhq/relay-tui/internal/config"
	"github.com/relayhq/relay-tui/internal/logging"
	"github.com/relayhq/relay-tui/internal/relay"
	"github.com/relayhq/relay-tui/internal/tui"
)

// NewRootCmd builds the root command. The TUI is the whole program; there
// are no subcommands.
func NewRootCmd() *cobra.Command {
	var (
		initMode bool
		debugLog string
	)

	root := &cobra.Command{
		Use:   "relay-tui",
		Short: "Interactive editor for relay configuration",
		Long: "relay-tui edits the layered relay configuration: model aliases,\n" +
			"prompt stacks, skills, tools and hooks. Changes are staged in\n" +
			"memory and written with Ctrl+S.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Setup(debugLog, debugLog != "")
			if err != nil {
				return err
			}
			defer closer.Close()

			store := config.NewStore()
			client := relay.NewClient()
			a := app.New(store, client, initMode)
			slog.Info("starting editor", "config", a.ConfigPath, "init", initMode)

			p := tea.NewProgram(tui.New(a, client), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run program: %w", err)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&initMode, "init", false, "run the setup wizard even if a config exists")
	root.Flags().StringVar(&debugLog, "debug-log", "", "append debug logs to this file")
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
