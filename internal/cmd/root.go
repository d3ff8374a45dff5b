// Package cmd implements the CLI commands for coderun.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/xdg/coderun/internal/clog"
	"github.com/xdg/coderun/internal/config"
	"github.com/xdg/coderun/internal/term"
	"github.com/xdg/coderun/internal/version"
)

// skipConfigErrors marks commands that must work even when the config file
// is invalid, such as the ones used to repair it.
const skipConfigErrors = "coderun/skip-config-errors"

var (
	configFlag string
	debugFlag  bool
	silentFlag bool

	// loaded is the effective configuration for the running command.
	loaded *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coderun",
	Short: "Run code fragments as external processes",
	Long: `Coderun runs a code fragment with a shell or a named evaluator and prints
its output as the fragment produces it.

Evaluators are configured in ~/.config/coderun/config.yaml (see 'coderun config').
The exit code is 0 when the fragment succeeds and 1 when it fails.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = clog.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/coderun/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "suppress normal output; errors are still printed")
}

// setup loads the configuration and configures output for every command.
func setup(cmd *cobra.Command, args []string) error {
	term.SetSilent(silentFlag)

	cfg, err := config.Load(configFlag)
	if err != nil {
		if cmd.Annotations[skipConfigErrors] == "" {
			return err
		}
		clog.Debug("ignoring config error for %s: %v", cmd.Name(), err)
		cfg = config.Default()
	}
	loaded = cfg

	level, err := clog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = clog.LevelInfo
	}
	if debugFlag {
		level = clog.LevelDebug
	}
	if err := clog.Configure(cfg.Log.File, level, silentFlag); err != nil {
		term.Warn("file logging disabled: %v", err)
	}
	return nil
}

// configFile returns the config file path in effect.
func configFile() string {
	if configFlag != "" {
		return configFlag
	}
	return config.Path()
}

// Execute runs the root command and returns any error. Errors other than
// *ExitCodeError are printed to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var exitErr *ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		term.Error("%v", err)
	}
	return err
}
