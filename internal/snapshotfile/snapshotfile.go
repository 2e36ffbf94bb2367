// Package snapshotfile reads financial snapshots and goals from YAML or JSON
// fixtures so the engine can run without a database.
package snapshotfile

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/service"
)

const defaultHistoryMonths = 6

// File is the on-disk layout. Amounts and dates are strings so they survive
// the round trip through YAML without float or timestamp coercion.
type File struct {
	SnapshotDate  string        `yaml:"snapshotDate"`
	Timeframe     string        `yaml:"timeframe"`
	HistoryMonths int           `yaml:"historyMonths"`
	Balance       string        `yaml:"balance"`
	Categories    []Category    `yaml:"categories"`
	Transactions  []Transaction `yaml:"transactions"`
	Budgets       []Budget      `yaml:"budgets"`
	Debts         []Debt        `yaml:"debts"`
	Savings       []Saving      `yaml:"savings"`
}

type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Transaction struct {
	ID          string `yaml:"id"`
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Type        string `yaml:"type"`
	CategoryID  string `yaml:"categoryID"`
	Description string `yaml:"description"`
}

type Budget struct {
	ID         string `yaml:"id"`
	CategoryID string `yaml:"categoryID"`
	GoalAmount string `yaml:"goalAmount"`
	StartDate  string `yaml:"startDate"`
	EndDate    string `yaml:"endDate"`
	Expired    bool   `yaml:"expired"`
}

type Debt struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Amount       string  `yaml:"amount"`
	InterestRate float64 `yaml:"interestRate"`
}

type Saving struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	TargetAmount string `yaml:"targetAmount"`
	StartAmount  string `yaml:"startAmount"`
	EndDate      string `yaml:"endDate"`
}

type Goal struct {
	Type               string `yaml:"type"`
	Priority           string `yaml:"priority"`
	MonthlyRequirement string `yaml:"monthlyRequirement"`
}

func Load(path string) (*analysis.FinancialSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotfile.Load: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture and windows its transactions by timeframe the same
// way snapshots loaded from the database are windowed.
func Parse(data []byte) (*analysis.FinancialSnapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("snapshotfile.Parse: %w", err)
	}
	return f.Snapshot()
}

func (f *File) Snapshot() (*analysis.FinancialSnapshot, error) {
	p := &parser{}

	if f.SnapshotDate == "" {
		return nil, &analysis.InputDataError{Field: "snapshotDate", Reason: "missing"}
	}
	snapshotDate := p.date("snapshotDate", f.SnapshotDate)
	timeframe, err := analysis.ParseTimeframe(f.Timeframe)
	if err != nil {
		return nil, err
	}
	historyMonths := f.HistoryMonths
	if historyMonths == 0 {
		historyMonths = defaultHistoryMonths
	}

	snapshot := &analysis.FinancialSnapshot{
		Balance:      p.optionalAmount("balance", f.Balance),
		SnapshotDate: snapshotDate,
		Timeframe:    timeframe,
	}

	snapshot.Categories = make([]analysis.Category, len(f.Categories))
	for i, c := range f.Categories {
		snapshot.Categories[i] = analysis.Category{ID: p.id(field("categories", i, "id"), c.ID), Name: c.Name, Type: c.Type}
	}

	txs := make([]analysis.Transaction, len(f.Transactions))
	for i, t := range f.Transactions {
		txs[i] = analysis.Transaction{
			ID:          p.optionalID(field("transactions", i, "id"), t.ID),
			Amount:      p.amount(field("transactions", i, "amount"), t.Amount),
			Date:        p.date(field("transactions", i, "date"), t.Date),
			Type:        analysis.TransactionType(t.Type),
			CategoryID:  p.nullID(field("transactions", i, "categoryID"), t.CategoryID),
			Description: t.Description,
		}
	}

	snapshot.Budgets = make([]analysis.Budget, len(f.Budgets))
	for i, b := range f.Budgets {
		snapshot.Budgets[i] = analysis.Budget{
			ID:         p.optionalID(field("budgets", i, "id"), b.ID),
			CategoryID: p.nullID(field("budgets", i, "categoryID"), b.CategoryID),
			GoalAmount: p.amount(field("budgets", i, "goalAmount"), b.GoalAmount),
			StartDate:  p.optionalDate(field("budgets", i, "startDate"), b.StartDate),
			EndDate:    p.optionalDate(field("budgets", i, "endDate"), b.EndDate),
			Expired:    b.Expired,
		}
	}

	snapshot.Debts = make([]analysis.Debt, len(f.Debts))
	for i, d := range f.Debts {
		snapshot.Debts[i] = analysis.Debt{
			ID:           p.optionalID(field("debts", i, "id"), d.ID),
			Name:         d.Name,
			Amount:       p.amount(field("debts", i, "amount"), d.Amount),
			InterestRate: d.InterestRate,
		}
	}

	snapshot.Savings = make([]analysis.Saving, len(f.Savings))
	for i, s := range f.Savings {
		snapshot.Savings[i] = analysis.Saving{
			ID:           p.optionalID(field("savings", i, "id"), s.ID),
			Name:         s.Name,
			TargetAmount: p.amount(field("savings", i, "targetAmount"), s.TargetAmount),
			StartAmount:  p.optionalAmount(field("savings", i, "startAmount"), s.StartAmount),
			EndDate:      p.optionalDate(field("savings", i, "endDate"), s.EndDate),
		}
	}

	if p.err != nil {
		return nil, p.err
	}

	window := service.WindowFor(timeframe, snapshotDate, historyMonths)
	snapshot.Transactions, snapshot.CurrentTransactions = window.Split(txs)
	return snapshot, nil
}

func LoadGoals(path string) ([]analysis.TargetGoal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotfile.LoadGoals: %w", err)
	}
	return ParseGoals(data)
}

func ParseGoals(data []byte) ([]analysis.TargetGoal, error) {
	var goals []Goal
	if err := yaml.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("snapshotfile.ParseGoals: %w", err)
	}

	p := &parser{}
	parsed := make([]analysis.TargetGoal, len(goals))
	for i, g := range goals {
		parsed[i] = analysis.TargetGoal{
			Type:               g.Type,
			Priority:           analysis.Level(g.Priority),
			MonthlyRequirement: p.amount(field("goals", i, "monthlyRequirement"), g.MonthlyRequirement),
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return parsed, nil
}

// LoadPreferences reads a map of category id to weight multiplier.
func LoadPreferences(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotfile.LoadPreferences: %w", err)
	}
	var prefs map[string]float64
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("snapshotfile.LoadPreferences: %w", err)
	}
	for id, pref := range prefs {
		if math.IsNaN(pref) || math.IsInf(pref, 0) || pref <= 0 {
			return nil, &analysis.InputDataError{Field: "preferences." + id, Reason: fmt.Sprintf("must be a positive multiplier, got %v", pref)}
		}
	}
	return prefs, nil
}

// parser keeps the first conversion error so Snapshot can report it once
// every field has been visited.
type parser struct {
	err error
}

func (p *parser) fail(name, format string, args ...interface{}) {
	if p.err == nil {
		p.err = &analysis.InputDataError{Field: name, Reason: fmt.Sprintf(format, args...)}
	}
}

func (p *parser) amount(name, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		p.fail(name, "invalid decimal %q", value)
		return decimal.Zero
	}
	return d
}

func (p *parser) optionalAmount(name, value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	return p.amount(name, value)
}

func (p *parser) date(name, value string) time.Time {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	p.fail(name, "invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
	return time.Time{}
}

func (p *parser) optionalDate(name, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	return p.date(name, value)
}

func (p *parser) id(name, value string) uuid.UUID {
	id, err := uuid.FromString(value)
	if err != nil {
		p.fail(name, "invalid uuid %q", value)
		return uuid.Nil
	}
	return id
}

func (p *parser) optionalID(name, value string) uuid.UUID {
	if value == "" {
		return uuid.Nil
	}
	return p.id(name, value)
}

func (p *parser) nullID(name, value string) uuid.NullUUID {
	if value == "" {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: p.id(name, value), Valid: true}
}

func field(list string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, name)
}
