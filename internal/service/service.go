package service

import (
	"time"
)

// Service holds all business logic services.
type Service struct {
	Analysis *AnalysisService
}

// NewService creates a new Service backed by the given snapshot loader and
// worker pool.
func NewService(loader SnapshotLoader, runner ActionRunner, historyMonths int, timeout time.Duration) *Service {
	return &Service{
		Analysis: NewAnalysisService(loader, runner, historyMonths, timeout),
	}
}
