package logger_test

import (
	"context"
	"testing"

	"clinic-portal-backend/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestWithContextCarriesRequestFields(t *testing.T) {
	ctx := context.WithValue(context.Background(), logger.RequestIDKey, "req-123")
	ctx = context.WithValue(ctx, logger.ActorIDKey, "b2c3d4e5")

	log := logger.WithContext(ctx)

	assert.Equal(t, "req-123", log.Data["request_id"])
	assert.Equal(t, "b2c3d4e5", log.Data["actor"])
}

func TestWithContextEmptyContext(t *testing.T) {
	log := logger.WithContext(context.Background())

	assert.Empty(t, log.Data)
}

func TestWithFieldsChains(t *testing.T) {
	log := logger.New().WithField("doctor_id", "d1").WithFields(map[string]interface{}{
		"date": "2024-06-10",
	})

	assert.Equal(t, "d1", log.Data["doctor_id"])
	assert.Equal(t, "2024-06-10", log.Data["date"])
}
