package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rentID = "6f1c3b52-8f0e-4c59-9a59-3f2f4d6f0a01"

const snapshotYAML = `
snapshotDate: 2025-06-20
timeframe: monthly
categories:
  - id: ` + rentID + `
    name: Rent
transactions:
  - {amount: 40000, date: 2025-03-01, type: income, description: Salary}
  - {amount: 40000, date: 2025-04-01, type: income, description: Salary}
  - {amount: 40000, date: 2025-05-01, type: income, description: Salary}
  - {amount: -1000, date: 2025-05-02, type: expense, categoryID: ` + rentID + `}
  - {amount: -1200, date: 2025-06-02, type: expense, categoryID: ` + rentID + `}
budgets:
  - {categoryID: ` + rentID + `, goalAmount: "1000"}
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// -- analyze tests --

func TestAnalyze_PrintsResult(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", snapshotYAML)
	goalsPath := writeFile(t, "goals.yaml", "- type: emergency\n  priority: high\n  monthlyRequirement: 100\n")

	stdout, _, err := runCommand(t, "analyze", snapshotPath, "--goals", goalsPath)

	require.NoError(t, err)
	var result struct {
		Success         bool `json:"success"`
		Recommendations struct {
			RecommendationCount int `json:"recommendationCount"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Recommendations.RecommendationCount)
}

func TestAnalyze_LogsAtInfo(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", snapshotYAML)

	_, stderr, err := runCommand(t, "analyze", snapshotPath, "--log-level", "info")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Command.analyze.Complete")
	assert.Contains(t, stderr, `"recommendationCount":1`)
}

func TestAnalyze_InvalidSnapshot(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", "snapshotDate: 2025-06-20\ntimeframe: yearly\n")

	_, _, err := runCommand(t, "analyze", snapshotPath)

	assert.ErrorContains(t, err, "timeframe")
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, _, err := runCommand(t, "analyze", filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "reading snapshot")
}

func TestAnalyze_RequiresArgument(t *testing.T) {
	_, _, err := runCommand(t, "analyze")

	assert.Error(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", snapshotYAML)

	_, _, err := runCommand(t, "analyze", snapshotPath, "--log-level", "chatty")

	assert.ErrorContains(t, err, "configuring logging")
}

// -- plan tests --

func TestPlan_PrintsPlan(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", snapshotYAML)
	prefsPath := writeFile(t, "prefs.yaml", rentID+": 1.2\n")

	stdout, _, err := runCommand(t, "plan", snapshotPath, "--preferences", prefsPath)

	require.NoError(t, err)
	var plan struct {
		Success         bool `json:"success"`
		CategoryBudgets []struct {
			Name string `json:"name"`
		} `json:"categoryBudgets"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &plan))
	assert.True(t, plan.Success)
	if assert.Len(t, plan.CategoryBudgets, 1) {
		assert.Equal(t, "Rent", plan.CategoryBudgets[0].Name)
	}
}

func TestPlan_InsufficientIncome(t *testing.T) {
	snapshotPath := writeFile(t, "snapshot.yaml", "snapshotDate: 2025-06-20\n")

	_, _, err := runCommand(t, "plan", snapshotPath)

	assert.ErrorContains(t, err, "planning budget")
}
