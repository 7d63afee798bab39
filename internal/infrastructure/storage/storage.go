// Package storage abre el backend de persistencia elegido en la configuración
// (PostgreSQL o memoria) y expone sus repositorios detrás de los puertos del dominio.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/postgres"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Storage repositorios listos para inyectar en los casos de uso.
type Storage struct {
	Driver        string
	Products      repository.ProductRepository
	Users         repository.UserRepository
	MovementTypes repository.MovementTypeRepository
	Movements     repository.MovementRepository
	Reports       repository.ReportRepository
	Health        repository.HealthChecker
	Tx            inventory.TxRunner

	migrate func(ctx context.Context) error
	close   func()
}

// Open conecta según cfg.Driver. Con AutoMigrate aplica el esquema al abrir.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	var s *Storage
	switch cfg.Driver {
	case config.DriverMemory:
		s = openMemory()
		log.Warn().Msg("persistencia en memoria: los datos se pierden al reiniciar")
	case config.DriverPostgres:
		var err error
		if s, err = openPostgres(ctx, cfg); err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.Host).Str("db", cfg.DBName).Msg("conectado a PostgreSQL")
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}

	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
		log.Info().Msg("esquema aplicado")
	}
	return s, nil
}

func openMemory() *Storage {
	st := memory.NewStore()
	return &Storage{
		Driver:        config.DriverMemory,
		Products:      st.Products(),
		Users:         st.Users(),
		MovementTypes: st.MovementTypes(),
		Movements:     st.Movements(),
		Reports:       st.Reports(),
		Health:        st,
		Tx:            st,
		migrate:       func(context.Context) error { return nil },
		close:         func() {},
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &Storage{
		Driver:        config.DriverPostgres,
		Products:      postgres.NewProductRepository(pool),
		Users:         postgres.NewUserRepository(pool),
		MovementTypes: postgres.NewMovementTypeRepository(pool),
		Movements:     postgres.NewMovementRepository(pool),
		Reports:       postgres.NewReportRepository(pool),
		Health:        postgres.NewHealthRepository(pool),
		Tx:            postgres.NewTxRunner(pool),
		migrate:       func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
		close:         pool.Close,
	}, nil
}

// Migrate aplica el esquema embebido (no-op en memoria).
func (s *Storage) Migrate(ctx context.Context) error {
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("storage: migrar: %w", err)
	}
	return nil
}

// Close libera las conexiones.
func (s *Storage) Close() {
	s.close()
}
