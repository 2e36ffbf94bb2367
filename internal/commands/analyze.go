package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/snapshotfile"
)

func newAnalyzeCommand(logLevel *string) *cobra.Command {
	var goalsPath string

	cmd := &cobra.Command{
		Use:   "analyze <snapshot-file>",
		Short: "Recommend budget reallocations for a snapshot",
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

			var goals []analysis.TargetGoal
			if goalsPath != "" {
				goals, err = snapshotfile.LoadGoals(goalsPath)
				if err != nil {
					return fmt.Errorf("reading goals: %w", err)
				}
			}

			endTimer := logData.AddTiming("analysisMs")
			result, err := analysis.NewEngine().Reallocate(snapshot, goals)
			endTimer()
			if err != nil {
				return fmt.Errorf("analyzing snapshot: %w", err)
			}

			logData.AddData("recommendationCount", result.Recommendations.RecommendationCount)
			logData.AddData("framework", result.Analysis.Framework.Framework)
			logComplete(logData, "analyze")
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&goalsPath, "goals", "", "YAML or JSON file listing savings goals")

	return cmd
}
