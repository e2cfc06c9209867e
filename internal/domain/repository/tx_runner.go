package repository

import "context"

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	RunEmployee(ctx context.Context, fn func(users UserRepository, profiles ProfileRepository) error) error
}
