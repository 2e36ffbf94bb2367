package analysis

type Framework string

const (
	FrameworkEnvelope          Framework = "ENVELOPE_SYSTEM"
	FrameworkDebtAvalanche     Framework = "DEBT_AVALANCHE_BUDGET"
	FrameworkAggressiveSavings Framework = "AGGRESSIVE_SAVINGS_BUDGET"
	FrameworkFiftyThirtyTwenty Framework = "50_30_20_RULE"
	// FrameworkBalanced shares the 50/30/20 calculator.
	FrameworkBalanced Framework = "BALANCED_APPROACH"
)

type FrameworkSelection struct {
	Framework Framework `json:"framework"`
	Reason    string    `json:"reason"`
}

// SelectFramework evaluates the selection rules in order and returns the first
// match.
func SelectFramework(income IncomeAnalysis, debt DebtAnalysis, savings []Saving) FrameworkSelection {
	avg := income.AverageMonthlyIncome

	if avg.LessThan(envelopeIncomeCeiling) {
		return FrameworkSelection{Framework: FrameworkEnvelope, Reason: "low_income"}
	}
	if debt.HighInterestDebt.GreaterThan(avg.Mul(highInterestIncomeShare)) {
		return FrameworkSelection{Framework: FrameworkDebtAvalanche, Reason: "high_interest_debt"}
	}
	savingsCeiling := avg.Mul(aggressiveSavingsMultiple)
	for _, s := range savings {
		if s.TargetAmount.GreaterThan(savingsCeiling) {
			return FrameworkSelection{Framework: FrameworkAggressiveSavings, Reason: "large_savings_goal"}
		}
	}
	if income.IncomeStability > highStabilityThreshold {
		return FrameworkSelection{Framework: FrameworkFiftyThirtyTwenty, Reason: "stable_income"}
	}
	return FrameworkSelection{Framework: FrameworkBalanced, Reason: "default"}
}
