package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/teaguard/boundary"
	"github.com/jask/teaguard/internal/config"
	"github.com/jask/teaguard/report"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		modeFlag    string
		crashDBFlag string
	)
	cmd := &cobra.Command{
		Use:   "teaguard",
		Short: "Demo of the teaguard error boundary around a fragile TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if modeFlag != "" {
				cfg.Mode = modeFlag
			}
			if crashDBFlag != "" {
				cfg.CrashLog.Enabled = true
				cfg.CrashLog.Path = crashDBFlag
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&modeFlag, "mode", "", "disclosure mode: development or production")
	cmd.Flags().StringVar(&crashDBFlag, "crash-db", "", "record contained failures to this sqlite file")
	return cmd
}

func run(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sinks := report.Multi{report.NewLogReporter(logger)}

	if cfg.CrashLog.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.CrashLog.Path), 0o755); err != nil {
			return fmt.Errorf("mkdir crash log dir: %w", err)
		}
		store, err := report.OpenStore(cfg.CrashLog.Path)
		if err != nil {
			return fmt.Errorf("open crash log: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	b := boundary.New(newDemoModel(),
		boundary.WithMode(boundary.ParseMode(cfg.Mode)),
		boundary.WithReporter(sinks),
		boundary.WithScope("demo"),
		boundary.WithReload(newDemoModel),
	)

	p := tea.NewProgram(b, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
