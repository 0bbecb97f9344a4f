package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Turnos-api/internal/application/auth"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que TxRunner implementa auth.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Lo usa el registro: get-or-create de la organización + alta del usuario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orgs repository.OrganizationRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orgRepo := NewOrganizationRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(orgRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
