package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/coderun/internal/config"
	"github.com/xdg/coderun/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage coderun's configuration.

The configuration file is stored at ~/.config/coderun/config.yaml
(or $XDG_CONFIG_HOME/coderun/config.yaml if XDG_CONFIG_HOME is set).
$CODERUN_CONFIG or --config selects a different file.

Use the subcommands to view, edit, or initialize the configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective config",
	Long: `Print the effective configuration as YAML.

If no config file exists, shows the default configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit config in $EDITOR",
	Long: `Open the configuration file in your editor.

The editor is determined by VISUAL or EDITOR, falling back to vi.
If the configuration file doesn't exist, a default one is created first.
The file is validated after the editor exits.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigErrors: "true"},
	RunE:        runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print config file path",
	Long:        `Print the path to the configuration file.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigErrors: "true"},
	Run:         runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	Long: `Create the default configuration file if it doesn't exist.

This creates a fully-commented configuration file with all default values.
If the file already exists, this command does nothing.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigErrors: "true"},
	RunE:        runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(loaded)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	term.Print(string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if err := config.Edit(configFile()); err != nil {
		return fmt.Errorf("failed to edit config: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	term.Println(configFile())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile()
	wrote, err := config.WriteDefault(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if wrote {
		term.Printf("Created %s\n", path)
	} else {
		term.Printf("Config already exists at %s\n", path)
	}
	return nil
}
