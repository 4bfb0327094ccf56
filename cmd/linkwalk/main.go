// linkwalk shows a sprite-sheet character that walks around the window with the arrow keys.
//
// Usage:
//
//	linkwalk              - Open the window
//	linkwalk layouts      - Print the atlas layouts cut from the sprite sheet
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.linkwalk, ./configs, builtin)
//	--sheet <path>      - Sprite sheet PNG, overrides the config
//	--debug             - Show the Dear ImGui overlay
//	--mute              - Disable footstep sounds
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/linkwalk/internal/config"
)

var (
	flagConfig   string
	flagSheet    string
	flagDebug    bool
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkwalk",
	Short: "Walk a sprite-sheet character around with the arrow keys",
	Long: `linkwalk opens a window with a single character drawn from a sprite sheet.
Arrow keys walk it around; it faces the direction it moves and idles,
blinks and walks through the frames of the sheet. Escape or Q quits.

Examples:
  linkwalk
  linkwalk --sheet assets/sprite_sheets/link.png --debug
  linkwalk layouts`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "Path to the sprite sheet PNG")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(layoutsCmd)
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet.Path = flagSheet
	}
	if flags.Changed("debug") {
		cfg.Debug.Enabled = flagDebug
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("command line: %w", err)
	}
	return cfg, source, nil
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "linkwalk",
		Level:           cfg.LogLevel(),
	})
}
