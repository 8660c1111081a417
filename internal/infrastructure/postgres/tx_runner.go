package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// TxRunner ejecuta una función contra el libro del rol pedido dentro de una
// transacción: supersede + insert se confirman o revierten juntos. El callback
// recibe un repositorio atado a la tx, nunca al pool.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool compartido.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, elige el libro según el rol y aplica fn.
// Si fn falla, la tx se revierte y no queda ninguna escritura parcial.
func (t *TxRunner) Run(ctx context.Context, role string, fn func(ledger repository.LedgerRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var ledger repository.LedgerRepository
	switch role {
	case entity.RoleLessor:
		ledger = NewOwnedLedgerRepository(tx)
	default:
		ledger = NewTenantLedgerRepository(tx)
	}

	if err := fn(ledger); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
