package repository

import (
	"context"
	"time"
)

// TokenRevocationStore guarda los JTI revocados en logout hasta su expiración.
// Implementaciones: PostgreSQL (revoked_tokens) y Redis.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
