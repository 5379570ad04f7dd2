package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tripbook/internal/config"
	"github.com/aidanlsb/tripbook/internal/ui"
)

func configData(path string, exists bool, c *config.Config) map[string]interface{} {
	return map[string]interface{}{
		"config_path":   path,
		"exists":        exists,
		"data_file":     c.DataPath(),
		"format":        c.Format,
		"history_file":  c.HistoryPath(),
		"history_limit": c.HistoryLimit,
		"export_dir":    c.ExportPath(),
		"log": map[string]interface{}{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
		"ui": map[string]interface{}{
			"accent":     c.UI.Accent,
			"code_theme": c.UI.CodeTheme,
		},
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the tripbook config.toml",
	Long: `Show the effective configuration, with every path resolved.

Use "tripbook config init" to write a commented default file.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	loaded, err := config.Load(configPath)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if isJSONOutput() {
		outputSuccess(configData(path, exists, loaded), nil)
		return nil
	}

	w := cmd.OutOrStdout()
	state := ""
	if !exists {
		state = " " + ui.Hint("(not created, showing defaults)")
	}
	fmt.Fprintf(w, "%s%s\n", ui.FilePath(path), state)

	t := ui.NewTable(2)
	t.AddRow("data_file", loaded.DataPath())
	t.AddRow("format", loaded.Format)
	t.AddRow("history_file", loaded.HistoryPath())
	t.AddRow("history_limit", fmt.Sprint(loaded.HistoryLimit))
	t.AddRow("export_dir", loaded.ExportPath())
	t.AddRow("log.level", loaded.Log.Level)
	t.AddRow("log.format", loaded.Log.Format)
	t.AddRow("ui.accent", loaded.UI.Accent)
	t.AddRow("ui.code_theme", loaded.UI.CodeTheme)
	fmt.Fprint(w, t.String())
	return nil
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := resolvedConfigPath()
		_, statErr := os.Stat(target)
		existed := statErr == nil

		created, err := config.CreateDefault(target)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": created,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warningf("config already exists: %s", created))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("created "+ui.FilePath(created)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
	rootCmd.AddCommand(configCmd)
}
