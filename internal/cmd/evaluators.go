package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xdg/coderun/internal/config"
	"github.com/xdg/coderun/internal/executor"
	"github.com/xdg/coderun/internal/term"
)

var evaluatorsCmd = &cobra.Command{
	Use:   "evaluators",
	Short: "List available evaluators",
	Long: `List the built-in shell and every evaluator defined in the config file,
with the command line each one runs. The fragment's source file path is
appended to this command line.`,
	Args: cobra.NoArgs,
	RunE: runEvaluators,
}

func init() {
	rootCmd.AddCommand(evaluatorsCmd)
}

func runEvaluators(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(term.Stdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCOMMAND")
	shell, err := describeCommand(executor.ShellEvaluator())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\n", config.ReservedEvaluatorName, shell)

	reg := loaded.Registry()
	for _, name := range loaded.EvaluatorNames() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, executor.CommandLine(reg[name]))
	}
	return w.Flush()
}
