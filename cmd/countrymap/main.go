package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"countrymap/internal/config"
	"countrymap/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		infoPath   string
		logPath    string
		watch      bool
		debug      bool
	)
	cmd := &cobra.Command{
		Use:   "countrymap [map.geojson]",
		Short: "countrymap - browse country outlines in the terminal",
		Long: `countrymap draws the countries of a GeoJSON file in the terminal.
Drag or use the arrow keys to pan, scroll or +/- to zoom, and click a
country to open it centered in a detail pane together with its notes.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if infoPath != "" {
				cfg.InfoPath = infoPath
			}
			opts := tui.Options{Config: cfg, Watch: watch}
			if len(args) > 0 {
				opts.MapPath = args[0]
			}
			if watch && opts.MapPath == "" {
				return errors.New("--watch needs a map file")
			}

			// Setup logging
			if debug {
				f, err := tea.LogToFile(logPath, "countrymap")
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			m, err := tui.New(opts)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			if fm, ok := final.(tui.Model); ok {
				fm.Close()
			} else {
				m.Close()
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&infoPath, "info", "", "YAML file with country notes (overrides info_path)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the map file when it changes")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&logPath, "log-file", "countrymap.log", "Debug log destination")

	return cmd
}
