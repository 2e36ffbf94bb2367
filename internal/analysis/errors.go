package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InputDataError reports a snapshot or request field that cannot be analysed.
type InputDataError struct {
	Field  string
	Reason string
}

func (e *InputDataError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func inputError(field, format string, args ...interface{}) *InputDataError {
	return &InputDataError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InsufficientIncomeError is returned by the envelope calculator when fixed
// expenses consume all of the income.
type InsufficientIncomeError struct {
	Income        decimal.Decimal
	FixedExpenses decimal.Decimal
}

func (e *InsufficientIncomeError) Error() string {
	return fmt.Sprintf("insufficient income: %s does not cover fixed expenses of %s",
		e.Income.StringFixed(moneyPlaces), e.FixedExpenses.StringFixed(moneyPlaces))
}
