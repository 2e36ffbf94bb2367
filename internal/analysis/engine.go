package analysis

import (
	"math"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Engine runs the analysis pipeline over a snapshot. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	newID func() uuid.UUID
}

type Option func(*Engine)

// WithIDGenerator replaces the random recommendation id source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newID: func() uuid.UUID { return uuid.Must(uuid.NewV4()) },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Analysis struct {
	Income    IncomeAnalysis     `json:"income"`
	Spending  SpendingAnalysis   `json:"spending"`
	Debt      DebtAnalysis       `json:"debt"`
	Framework FrameworkSelection `json:"framework"`
	Variance  VarianceAnalysis   `json:"variance"`
}

type ReallocationResult struct {
	Success         bool              `json:"success"`
	Analysis        Analysis          `json:"analysis"`
	Opportunities   []Opportunity     `json:"opportunities"`
	Recommendations RecommendationSet `json:"recommendations"`
	Projections     Projection        `json:"projections"`
	Plan            Plan              `json:"plan"`
}

// Reallocate analyses the snapshot against its active budgets and proposes
// budget changes. goals may be nil.
func (e *Engine) Reallocate(snapshot *FinancialSnapshot, goals []TargetGoal) (*ReallocationResult, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	for i, g := range goals {
		if err := g.Validate(i); err != nil {
			return nil, err
		}
	}

	analysis := e.analyze(snapshot)
	budgets := snapshot.ActiveBudgets()
	analysis.Variance = AnalyzeVariance(budgets, snapshot.CurrentTransactions, snapshot.Categories)

	opportunities := IdentifyOpportunities(analysis.Variance, goals)
	recommendations := GenerateRecommendations(opportunities, budgets, SpentByCategory(snapshot.CurrentTransactions), e.newID)
	projection := ProjectImpact(recommendations.Recommendations, len(snapshot.CurrentTransactions))

	return &ReallocationResult{
		Success:         true,
		Analysis:        analysis,
		Opportunities:   opportunities,
		Recommendations: recommendations,
		Projections:     projection,
		Plan:            BuildPlan(recommendations, projection),
	}, nil
}

type BudgetPlan struct {
	Success         bool                `json:"success"`
	Analysis        Analysis            `json:"analysis"`
	Allocation      Allocation          `json:"allocation"`
	Envelope        *EnvelopeAllocation `json:"envelope,omitempty"`
	DebtAvalanche   *DebtAvalanchePlan  `json:"debtAvalanche,omitempty"`
	CategoryBudgets []CategoryBudget    `json:"categoryBudgets"`
}

// BuildBudgetPlan selects a budgeting framework from the historical patterns
// and proposes per-category budgets. prefs weights categories by id and may
// be nil.
func (e *Engine) BuildBudgetPlan(snapshot *FinancialSnapshot, prefs map[string]float64) (*BudgetPlan, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	for id, pref := range prefs {
		if math.IsNaN(pref) || math.IsInf(pref, 0) || pref <= 0 {
			return nil, inputError("preferences."+id, "must be a positive multiplier, got %v", pref)
		}
	}

	analysis := e.analyze(snapshot)
	income := analysis.Income.AverageMonthlyIncome
	plan := &BudgetPlan{Success: true, Analysis: analysis}

	switch analysis.Framework.Framework {
	case FrameworkEnvelope:
		envelope, err := Envelope(income, nil, analysis.Spending, snapshot.Categories)
		if err != nil {
			return nil, err
		}
		plan.Envelope = &envelope
		plan.Allocation = envelope.Allocation()
	case FrameworkDebtAvalanche:
		avalanche := DebtAvalanche(income, snapshot.Debts, essentialAmounts(analysis.Spending, snapshot.Categories))
		plan.DebtAvalanche = &avalanche
		plan.Allocation = avalanche.Allocation()
	case FrameworkAggressiveSavings:
		plan.Allocation = AggressiveSavings(income)
	default:
		plan.Allocation = FiftyThirtyTwenty(income)
	}

	plan.CategoryBudgets = DistributeCategoryBudgets(plan.Allocation, analysis.Spending, snapshot.Categories, prefs)
	return plan, nil
}

func (e *Engine) analyze(snapshot *FinancialSnapshot) Analysis {
	income := AnalyzeIncome(snapshot.Transactions)
	debt := AnalyzeDebt(snapshot.Debts)
	return Analysis{
		Income:    income,
		Spending:  AnalyzeSpending(snapshot.Transactions),
		Debt:      debt,
		Framework: SelectFramework(income, debt, snapshot.Savings),
		Variance: VarianceAnalysis{
			CategoryVariances:       []CategoryVariance{},
			TotalBudgeted:           decimal.Zero,
			TotalSpent:              decimal.Zero,
			TotalVariance:           decimal.Zero,
			OverspendingCategories:  []CategoryVariance{},
			UnderspendingCategories: []CategoryVariance{},
			HighVarianceCategories:  []CategoryVariance{},
			UntrackedSpending:       UntrackedSpending{Categories: []UntrackedCategory{}, Total: decimal.Zero},
		},
	}
}

type FallbackAdvice struct {
	BasicAdvice []string `json:"basicAdvice"`
}

var basicAdvice = []string{
	"Track every expense for the next month to see where your money goes.",
	"Set aside part of each paycheck for an emergency fund before spending.",
	"Pay more than the minimum on your highest-interest debt.",
	"Review subscriptions and recurring charges for anything you no longer use.",
	"Compare your spending in each category against a simple budget every week.",
}

// Fallback is the static advice returned when a snapshot cannot be loaded.
func Fallback() FallbackAdvice {
	return FallbackAdvice{BasicAdvice: append([]string(nil), basicAdvice...)}
}
