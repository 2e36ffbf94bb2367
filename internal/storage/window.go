package storage

import (
	"time"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

// Window bounds the transactions loaded for a snapshot. History covers
// [HistoryStart, End] and the current timeframe covers [CurrentStart, End].
type Window struct {
	HistoryStart time.Time
	CurrentStart time.Time
	End          time.Time
}

// Earliest is the first date either range needs.
func (w Window) Earliest() time.Time {
	if w.CurrentStart.Before(w.HistoryStart) {
		return w.CurrentStart
	}
	return w.HistoryStart
}

// Split partitions transactions into the historical and current ranges. A
// transaction may land in both. Anything outside the window is dropped.
func (w Window) Split(txs []analysis.Transaction) (historical, current []analysis.Transaction) {
	historical = []analysis.Transaction{}
	current = []analysis.Transaction{}
	for _, tx := range txs {
		if tx.Date.After(w.End) {
			continue
		}
		if !tx.Date.Before(w.HistoryStart) {
			historical = append(historical, tx)
		}
		if !tx.Date.Before(w.CurrentStart) {
			current = append(current, tx)
		}
	}
	return historical, current
}
