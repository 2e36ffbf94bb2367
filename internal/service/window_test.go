package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

// -- WindowFor tests --

func TestWindowFor(t *testing.T) {
	date := time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		timeframe analysis.Timeframe
		current   time.Time
	}{
		{"weekly", analysis.TimeframeWeekly, time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)},
		{"monthly", analysis.TimeframeMonthly, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"quarterly", analysis.TimeframeQuarterly, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"empty defaults to monthly", "", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			window := WindowFor(tc.timeframe, date, 6)

			assert.Equal(t, tc.current, window.CurrentStart)
			assert.Equal(t, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), window.HistoryStart)
			assert.Equal(t, date, window.End)
		})
	}
}

func TestWindowFor_QuarterBoundaries(t *testing.T) {
	for month, start := range map[time.Month]time.Month{
		time.January: time.January, time.March: time.January,
		time.April: time.April, time.June: time.April,
		time.September: time.July, time.December: time.October,
	} {
		window := WindowFor(analysis.TimeframeQuarterly, time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC), 6)
		assert.Equal(t, start, window.CurrentStart.Month(), month.String())
	}
}

func TestWindowFor_HistoryClamped(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	window := WindowFor(analysis.TimeframeWeekly, date, 0)

	assert.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), window.HistoryStart)
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), window.CurrentStart)
}

func TestWindowFor_WeeklyCoversSevenDays(t *testing.T) {
	date := time.Date(2025, 8, 20, 23, 0, 0, 0, time.UTC)
	window := WindowFor(analysis.TimeframeWeekly, date, 6)

	var txs []analysis.Transaction
	for d := 0; d < 10; d++ {
		txs = append(txs, analysis.Transaction{Date: time.Date(2025, 8, 20-d, 12, 0, 0, 0, time.UTC)})
	}
	_, current := window.Split(txs)

	if assert.Len(t, current, 7) {
		assert.Equal(t, 14, current[len(current)-1].Date.Day())
	}
}
