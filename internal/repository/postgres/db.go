package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/Alaswadi/cupperly-sub000/internal/config"
)

// NewDB creates the PostgreSQL connection pool shared by all repositories.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	// Managed Postgres providers drop connections idle past ~1h.
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
