package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

var _ repository.TokenRevocationStore = (*RevokedTokenRepo)(nil)

// RevokedTokenRepo JTI revocados en la tabla revoked_tokens. Se usa cuando no hay Redis.
type RevokedTokenRepo struct {
	pool *pgxpool.Pool
}

// NewRevokedTokenRepository construye el adaptador.
func NewRevokedTokenRepository(pool *pgxpool.Pool) *RevokedTokenRepo {
	return &RevokedTokenRepo{pool: pool}
}

// Revoke registra el JTI; revocar dos veces no es error. Aprovecha para purgar los vencidos.
func (r *RevokedTokenRepo) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING`,
		jti, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < now()`); err != nil {
		return fmt.Errorf("purge revoked tokens: %w", err)
	}
	return nil
}

func (r *RevokedTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1 AND expires_at > now())`, jti,
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}
