package analysis

import "github.com/shopspring/decimal"

// Heuristic thresholds and multipliers used across the engine. They are domain
// simplifications and are kept together so they can be tuned in one place.
const (
	monthKeyLayout      = "2006-01"
	uncategorizedBucket = "uncategorized"
	moneyPlaces         = 2
	coefficientPlaces   = 4

	trendMinMonths      = 3
	trendIncreaseFactor = 1.1
	trendDecreaseFactor = 0.9
	recurringMinMatches = 2

	volatileThreshold = 0.5

	highInterestRateThreshold = 10.0
	snowballMaxDebtCount      = 5

	highStabilityThreshold = 0.8

	untrackedTopCategories = 3

	baseImplementationMinutes = 15
	minutesPerRecommendation  = 10

	overspendingEfficiencyGain     = 0.15
	underutilizationEfficiencyGain = 0.10
	maxEfficiencyImprovement       = 0.5
	highPriorityRiskWeight         = 0.3
	mediumPriorityRiskWeight       = 0.2
	lowPriorityRiskWeight          = 0.1
	stabilityHighPriorityCount     = 3
	richSampleSize                 = 10
	richDataQuality                = 0.8
	sparseDataQuality              = 0.6
	complexRecommendationCount     = 5
	complexityPenalty              = 0.1
	minConfidenceScore             = 0.5

	highConfidenceThreshold   = 0.8
	mediumConfidenceThreshold = 0.6
)

var (
	hundred = decimal.NewFromInt(100)

	minimumPaymentRate = decimal.RequireFromString("0.02")
	snowballSmallDebt  = decimal.NewFromInt(1000)

	envelopeIncomeCeiling     = decimal.NewFromInt(30000)
	highInterestIncomeShare   = decimal.RequireFromString("0.3")
	aggressiveSavingsMultiple = decimal.NewFromInt(3)

	needsShare             = decimal.RequireFromString("0.5")
	wantsShare             = decimal.RequireFromString("0.3")
	savingsAndDebtShare    = decimal.RequireFromString("0.2")
	aggressiveWantsShare   = decimal.RequireFromString("0.2")
	aggressiveSavingsShare = decimal.RequireFromString("0.3")
	groceriesShare         = decimal.RequireFromString("0.25")
	transportationShare    = decimal.RequireFromString("0.15")
	entertainmentShare     = decimal.RequireFromString("0.10")
	miscellaneousShare     = decimal.RequireFromString("0.20")
	emergencyShare         = decimal.RequireFromString("0.30")
	historicalBuffer       = decimal.RequireFromString("1.1")
	essentialFloor         = decimal.RequireFromString("0.9")

	significantOverspendPercent = decimal.NewFromInt(20)
	moderateOverspendPercent    = decimal.NewFromInt(10)
	onTrackFloorPercent         = decimal.NewFromInt(-10)
	moderateUnderspendPercent   = decimal.NewFromInt(-25)
	highSeverityPercent         = decimal.NewFromInt(50)
	highSeverityActual          = decimal.NewFromInt(500)
	mediumSeverityPercent       = decimal.NewFromInt(25)
	mediumSeverityActual        = decimal.NewFromInt(200)
	highVariancePercent         = decimal.NewFromInt(20)

	overspendOpportunityPercent = decimal.NewFromInt(15)
	underuseOpportunityPercent  = decimal.NewFromInt(-25)
	overspendBudgetMultiplier   = decimal.RequireFromString("1.1")
	underuseBudgetMultiplier    = decimal.RequireFromString("1.05")
	underuseReallocationShare   = decimal.RequireFromString("0.8")
	untrackedOpportunityMinimum = decimal.NewFromInt(100)
	untrackedBudgetMultiplier   = decimal.RequireFromString("1.1")

	sourceMinimumHeadroom = decimal.NewFromInt(50)
	sourceHeadroomShare   = decimal.RequireFromString("0.5")
	emergencyFundShare    = decimal.RequireFromString("0.4")
	debtPaymentShare      = decimal.RequireFromString("0.3")
	savingsGoalShare      = decimal.RequireFromString("0.3")

	overspendingReductionShare = decimal.RequireFromString("0.8")
	availableFundsSavingsShare = decimal.RequireFromString("0.7")
)

// essentialKeywords classify a category as essential when its name contains one of them.
var essentialKeywords = []string{
	"rent", "mortgage", "utilities", "groceries", "food", "transportation",
	"insurance", "medical", "healthcare", "debt", "loan",
}
