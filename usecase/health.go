package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dfjacobs/tropo-gateway/config"
	"github.com/dfjacobs/tropo-gateway/domains/health"
)

type healthService struct {
	startedAt time.Time
}

func NewHealthService() health.IHealthUsecase {
	return &healthService{startedAt: time.Now()}
}

func (s *healthService) GetStatus(ctx context.Context) (health.HealthRecord, error) {
	record := health.HealthRecord{
		Status:        health.StatusOk,
		Version:       config.AppVersion,
		TokenSet:      strings.TrimSpace(config.TropoAPIToken) != "",
		PlatformURL:   config.TropoBaseURL,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		CheckedAt:     time.Now().UTC(),
	}
	if !record.TokenSet {
		record.Status = health.StatusError
	}
	return record, nil
}
