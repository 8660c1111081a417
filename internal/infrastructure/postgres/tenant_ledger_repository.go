package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*TenantLedgerRepo)(nil)

// TenantLedgerRepo libro de arrendatarios sobre PostgreSQL: append-only, cada
// Insert agrega una fila y el historial crece monótonamente. Usable con pool o tx.
type TenantLedgerRepo struct {
	q Querier
}

// NewTenantLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantLedgerRepository(q Querier) *TenantLedgerRepo {
	return &TenantLedgerRepo{q: q}
}

// DeactivateActive apaga is_active del registro activo del vagón, si existe.
func (r *TenantLedgerRepo) DeactivateActive(companyID string, wagonNumber int64) (int64, error) {
	query := `
		UPDATE tenant_assignments
		SET is_active = false, updated_at = now()
		WHERE company_id = $1 AND wagon_number = $2 AND is_active AND NOT is_deleted`
	tag, err := r.q.Exec(context.Background(), query, companyID, wagonNumber)
	if err != nil {
		return 0, fmt.Errorf("deactivate tenant assignment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Insert agrega un registro nuevo (asignación activa o marca de exclusión).
func (r *TenantLedgerRepo) Insert(a *entity.Assignment) error {
	query := `
		INSERT INTO tenant_assignments
			(id, company_id, wagon_number, counterparty_name, counterparty_id,
			 lease_start, lease_end, is_active, is_deleted, document_ref, rate,
			 notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.WagonNumber, a.CounterpartyName, a.CounterpartyID,
		a.LeaseStart, a.LeaseEnd, a.IsActive, a.DocumentRef, a.Rate,
		a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant assignment: %w", err)
	}
	return nil
}

// History devuelve todos los registros no borrados del vagón, del más reciente
// al más antiguo: por inicio de período de negocio, con fallback a creación.
func (r *TenantLedgerRepo) History(companyID string, wagonNumber int64) ([]*entity.Assignment, error) {
	query := `
		SELECT id, company_id, wagon_number, counterparty_name, counterparty_id,
		       lease_start, lease_end, is_active, is_deleted, document_ref, rate,
		       notes, created_by, created_at, updated_at
		FROM tenant_assignments
		WHERE company_id = $1 AND wagon_number = $2 AND NOT is_deleted
		ORDER BY COALESCE(lease_start, created_at) DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, wagonNumber)
	if err != nil {
		return nil, fmt.Errorf("tenant assignment history: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		a.Role = entity.RoleTenant
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.WagonNumber, &a.CounterpartyName, &a.CounterpartyID,
			&a.LeaseStart, &a.LeaseEnd, &a.IsActive, &a.IsDeleted, &a.DocumentRef, &a.Rate,
			&a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tenant assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
