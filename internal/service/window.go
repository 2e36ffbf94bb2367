package service

import (
	"time"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/storage"
)

// WindowFor maps a timeframe onto concrete date ranges ending at
// snapshotDate. Weekly covers seven calendar days counting the snapshot day,
// monthly the calendar month to date and quarterly the calendar quarter to
// date. History reaches back
// historyMonths, at least one.
func WindowFor(timeframe analysis.Timeframe, snapshotDate time.Time, historyMonths int) storage.Window {
	if historyMonths < 1 {
		historyMonths = 1
	}

	year, month, day := snapshotDate.Date()
	loc := snapshotDate.Location()

	var current time.Time
	switch timeframe {
	case analysis.TimeframeWeekly:
		current = time.Date(year, month, day-6, 0, 0, 0, 0, loc)
	case analysis.TimeframeQuarterly:
		quarterStart := month - (month-1)%3
		current = time.Date(year, quarterStart, 1, 0, 0, 0, 0, loc)
	default:
		current = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	}

	return storage.Window{
		HistoryStart: time.Date(year, month-time.Month(historyMonths), day, 0, 0, 0, 0, loc),
		CurrentStart: current,
		End:          snapshotDate,
	}
}
