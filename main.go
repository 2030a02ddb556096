package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flexarea/app"
	"flexarea/config"
	"flexarea/inspect"
	"flexarea/log"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version         = "0.3.1"
	minRowsFlag     int
	maxRowsFlag     int
	durationFlag    int
	placeholderFlag string
	verboseFlag     bool

	rootCmd = &cobra.Command{
		Use:   "flexarea",
		Short: "Flexarea - A message composer that grows and shrinks with its content.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("flexarea must be run in a terminal")
			}

			ctx := context.Background()
			log.Initialize(verboseFlag)
			log.InitDebug()
			defer log.Close()
			defer log.CloseDebug()

			cfg := config.LoadConfig()

			// Flags override config.
			if cmd.Flags().Changed("min-rows") {
				cfg.MinRows = minRowsFlag
			}
			if cmd.Flags().Changed("max-rows") {
				cfg.MaxRows = maxRowsFlag
			}
			if cmd.Flags().Changed("duration") {
				cfg.ResizeDurationMs = durationFlag
			}
			if placeholderFlag != "" {
				cfg.Placeholder = placeholderFlag
			}
			if cfg.MinRows < 0 || cfg.MaxRows < 0 {
				return fmt.Errorf("height bounds cannot be negative")
			}
			if cfg.MinRows > 0 && cfg.MaxRows > 0 && cfg.MinRows > cfg.MaxRows {
				return fmt.Errorf("min rows (%d) cannot exceed max rows (%d)", cfg.MinRows, cfg.MaxRows)
			}

			return app.Run(ctx, cfg)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved draft and message history",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}

			// Hold the state lock so a running instance's debounced save
			// cannot interleave with the removal.
			lock, err := config.GetStateLock()
			if err != nil {
				return fmt.Errorf("failed to create state lock: %w", err)
			}
			if err := lock.Lock(); err != nil {
				return fmt.Errorf("failed to acquire state lock: %w", err)
			}
			defer lock.Unlock()

			statePath := filepath.Join(configDir, config.StateFileName)
			if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove state file: %w", err)
			}
			fmt.Println("Draft and history have been reset")

			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n", filepath.Join(configDir, config.StateFileName))

			// With FLEXAREA_INSPECT=1 a running instance writes UI snapshots;
			// print the latest one in readable form.
			if path := inspect.GetInspectFile(); path != "" {
				if data, err := os.ReadFile(path); err == nil {
					var snap inspect.Snapshot
					if err := json.Unmarshal(data, &snap); err == nil {
						fmt.Println(snap.ToText())
					}
				}
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of flexarea",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flexarea version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().IntVar(&minRowsFlag, "min-rows", 0,
		"Minimum composer height in text rows (0 = unbounded)")
	rootCmd.Flags().IntVar(&maxRowsFlag, "max-rows", 0,
		"Maximum composer height in text rows (0 = unbounded)")
	rootCmd.Flags().IntVar(&durationFlag, "duration", 0,
		"Height transition duration in milliseconds (0 = instant)")
	rootCmd.Flags().StringVarP(&placeholderFlag, "placeholder", "p", "",
		"Placeholder text for the empty composer")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Write info-level logs in addition to warnings and errors")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
