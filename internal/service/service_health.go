package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

// Check pings the database.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.checker.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
