package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/infrastructure/storage"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	s, err := storage.Open(context.Background(), config.DBConfig{Driver: config.DriverMemory, AutoMigrate: true}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.NoError(t, s.Health.Ping(context.Background()))

	list, err := s.Products.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.DBConfig{Driver: "mysql"}, logger.Nop())
	assert.Error(t, err)
}
