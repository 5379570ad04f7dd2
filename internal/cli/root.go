// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/config"
	"github.com/aidanlsb/tripbook/internal/logging"
	"github.com/aidanlsb/tripbook/internal/ui"
)

var (
	// Global flags
	configPath   string
	dataPathFlag string

	// Resolved values
	cfg    *config.Config
	logger = logging.Discard()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tripbook",
	Short: "Tripbook - plan trips from the terminal",
	Long: `Tripbook keeps a catalog of attractions, groups them into locations and
orders them into itineraries.

Run without a subcommand to start the interactive shell, or run any verb
directly, for example:

  tripbook add n/Singapore Zoo p/9 c/62693411 a/80 Mandai Lake Rd
  tripbook find zoo`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "version", "config", "completion", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}
		return loadGlobalConfig()
	},
	RunE: runShell,
}

// Execute runs the CLI. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !jsonOutput {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataPathFlag, "data", "", "Path to the catalog file (overrides data_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")

	for _, name := range commands.AllCommandNames() {
		switch name {
		case "help", "exit":
			// Only meaningful inside the shell; cobra provides its own help.
			continue
		}
		rootCmd.AddCommand(commands.GenerateCobraCommand(name, runLine))
	}
}

// loadGlobalConfig loads the config file and applies logging and theme
// settings from it.
func loadGlobalConfig() error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "Fix the file or pass --config with another path")
	}
	cfg = loaded

	logger = logging.Setup(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	ui.ConfigureTheme(cfg.UI.Accent)
	ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
	logger.Debug("loaded config", "path", resolvedConfigPath(), "data", dataPath())
	return nil
}

// resolvedConfigPath returns the config path in effect.
func resolvedConfigPath() string {
	if strings.TrimSpace(configPath) != "" {
		return configPath
	}
	return config.DefaultPath()
}

// dataPath returns the catalog path: --data wins over the config file.
func dataPath() string {
	if strings.TrimSpace(dataPathFlag) != "" {
		return dataPathFlag
	}
	return cfg.DataPath()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
