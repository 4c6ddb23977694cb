package db

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack/internal/domain/auth"
	"fintrack/internal/platform/config"
)

// Seed creates the configured demo account when one does not exist yet.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SeedUserEmail))
	if email == "" || cfg.SeedUserPassword == "" {
		slog.Info("seed skipped, no seed user configured")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedUserPassword)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `
    INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
  `, email, hash); err != nil {
		return err
	}
	slog.Info("seed user created", "email", email)
	return nil
}
