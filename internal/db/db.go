package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"psymetric/internal/config"
)

// NewPool construye el pool de conexiones para el servicio de scoring.
// La carga es de ráfagas cortas: inserts de reportes JSONB y lecturas de
// similitud pgvector, sin transacciones largas, así que el pool se mantiene
// chico y recicla conexiones seguido.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 8
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 15 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "psymetric-api"

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}
