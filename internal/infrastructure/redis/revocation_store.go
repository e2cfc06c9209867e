// Package redis guarda los JTI revocados en Redis con TTL igual a la vida restante del token.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/rrhh-api/internal/domain/repository"
	"github.com/jhoicas/rrhh-api/pkg/config"
)

const keyPrefix = "hrapi:revoked:"

var _ repository.TokenRevocationStore = (*RevocationStore)(nil)

// NewClient crea el cliente con timeouts cortos; el middleware de auth consulta en cada request.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// RevocationStore implementación de repository.TokenRevocationStore sobre Redis.
type RevocationStore struct {
	rdb goredis.Cmdable
	now func() time.Time
}

// NewRevocationStore construye el store sobre un cliente ya creado.
func NewRevocationStore(rdb goredis.Cmdable) *RevocationStore {
	return &RevocationStore{rdb: rdb, now: time.Now}
}

// Revoke hace SET jti EX ttl. Un token ya vencido no necesita guardarse.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := ttlUntil(s.now(), expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.rdb.Get(ctx, key(jti)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	return true, nil
}

func key(jti string) string { return keyPrefix + jti }

// ttlUntil redondea hacia arriba al segundo para que la clave no venza antes que el token.
func ttlUntil(now, expiresAt time.Time) time.Duration {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Second) + time.Second
}
