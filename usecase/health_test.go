package usecase

import (
	"context"
	"testing"

	"github.com/dfjacobs/tropo-gateway/config"
	"github.com/dfjacobs/tropo-gateway/domains/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthStatusReflectsTokenPresence(t *testing.T) {
	origToken := config.TropoAPIToken
	t.Cleanup(func() { config.TropoAPIToken = origToken })

	service := NewHealthService()

	config.TropoAPIToken = "token-1"
	record, err := service.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, health.StatusOk, record.Status)
	assert.True(t, record.TokenSet)

	config.TropoAPIToken = "   "
	record, err = service.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, health.StatusError, record.Status)
	assert.False(t, record.TokenSet)
}
