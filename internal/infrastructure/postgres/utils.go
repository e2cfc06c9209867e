package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx; los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// clockToPG convierte una hora opcional a columna TIME (NULL si nil).
func clockToPG(c *entity.ClockTime) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(c.Seconds()) * 1_000_000, Valid: true}
}

// clockFromPG inverso de clockToPG.
func clockFromPG(t pgtype.Time) *entity.ClockTime {
	if !t.Valid {
		return nil
	}
	secs := int(t.Microseconds / 1_000_000)
	return &entity.ClockTime{Hour: secs / 3600, Minute: secs % 3600 / 60, Second: secs % 60}
}
