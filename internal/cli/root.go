package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tablesel/internal/ui"
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	a := &app{}
	// cobra skips post-run hooks when RunE fails
	defer a.close()
	return newRootCommand(a, version, commit, buildDate).ExecuteContext(ctx)
}

func newRootCommand(a *app, version, commit, buildDate string) *cobra.Command {
	var printSelected bool

	rootCmd := &cobra.Command{
		Use:   "tablesel [rows-file]",
		Short: "Select rows of a table in the terminal",
		Long: `tablesel shows the rows of a YAML, TOML, JSON or CSV file as a table
with a checkbox per row and a select-all checkbox in the header.`,
		Example: `  # Pick rows interactively and print the chosen ids
  tablesel --print-selected users.yaml

  # Start with two rows selected
  tablesel --select u1,u3 users.csv`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			table, err := a.loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			defer table.Destroy()

			model := ui.NewModel(a.cfg, table)
			defer model.Close()

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			model.SetProgram(p)

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}

			ids := table.GetSelectedRowIDs()
			log.Info().Strs("selected", ids).Msg("Exited")

			if printSelected {
				out, err := json.Marshal(ids)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "log file path, empty to disable logging")
	rootCmd.PersistentFlags().StringSliceVar(&a.selectIDs, "select", nil, "comma separated row ids to select on load")
	rootCmd.Flags().BoolVar(&printSelected, "print-selected", false, "print the selected row ids as JSON on exit")

	rootCmd.AddCommand(newInspectCommand(a))

	return rootCmd
}
