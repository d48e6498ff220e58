package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

type HealthRecord struct {
	Status        Status    `json:"status"`
	Version       string    `json:"version"`
	TokenSet      bool      `json:"token_set"`
	PlatformURL   string    `json:"platform_url"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	CheckedAt     time.Time `json:"checked_at"`
}

type IHealthUsecase interface {
	GetStatus(ctx context.Context) (HealthRecord, error)
}
