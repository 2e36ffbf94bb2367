package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/snapshotfile"
)

func newPlanCommand(logLevel *string) *cobra.Command {
	var preferencesPath string

	cmd := &cobra.Command{
		Use:   "plan <snapshot-file>",
		Short: "Propose a budget plan for a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logData, err := newLogData(*logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			snapshot, err := snapshotfile.Load(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}

			var prefs map[string]float64
			if preferencesPath != "" {
				prefs, err = snapshotfile.LoadPreferences(preferencesPath)
				if err != nil {
					return fmt.Errorf("reading preferences: %w", err)
				}
			}

			endTimer := logData.AddTiming("analysisMs")
			plan, err := analysis.NewEngine().BuildBudgetPlan(snapshot, prefs)
			endTimer()
			if err != nil {
				return fmt.Errorf("planning budget: %w", err)
			}

			logData.AddData("framework", plan.Analysis.Framework.Framework)
			logData.AddData("categoryBudgetCount", len(plan.CategoryBudgets))
			logComplete(logData, "plan")
			return writeJSON(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&preferencesPath, "preferences", "", "YAML or JSON map of category id to weight multiplier")

	return cmd
}
