package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

var _ repository.CounterpartyRepository = (*CounterpartyRepo)(nil)

// CounterpartyRepo implementa el directorio de contrapartes sobre PostgreSQL.
type CounterpartyRepo struct {
	q Querier
}

// NewCounterpartyRepository construye el adaptador.
func NewCounterpartyRepository(q Querier) *CounterpartyRepo {
	return &CounterpartyRepo{q: q}
}

// Create inserta una contraparte. Nombre duplicado en la empresa -> ErrDuplicate.
func (r *CounterpartyRepo) Create(cp *entity.Counterparty) error {
	query := `
		INSERT INTO counterparties (id, company_id, name, tax_id, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.CompanyID, cp.Name, cp.TaxID, cp.Role, cp.IsActive, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert counterparty: %w", err)
	}
	return nil
}

// GetByID busca por id. Devuelve nil si no existe.
func (r *CounterpartyRepo) GetByID(id string) (*entity.Counterparty, error) {
	query := `
		SELECT id, company_id, name, tax_id, role, is_active, created_at, updated_at
		FROM counterparties
		WHERE id = $1`
	var cp entity.Counterparty
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&cp.ID, &cp.CompanyID, &cp.Name, &cp.TaxID, &cp.Role, &cp.IsActive, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get counterparty: %w", err)
	}
	return &cp, nil
}

// ListActiveByRole lista contrapartes activas del rol, por nombre.
func (r *CounterpartyRepo) ListActiveByRole(companyID, role string) ([]*entity.Counterparty, error) {
	query := `
		SELECT id, company_id, name, tax_id, role, is_active, created_at, updated_at
		FROM counterparties
		WHERE company_id = $1 AND role = $2 AND is_active
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID, role)
	if err != nil {
		return nil, fmt.Errorf("list counterparties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Counterparty
	for rows.Next() {
		var cp entity.Counterparty
		if err := rows.Scan(
			&cp.ID, &cp.CompanyID, &cp.Name, &cp.TaxID, &cp.Role, &cp.IsActive, &cp.CreatedAt, &cp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan counterparty: %w", err)
		}
		list = append(list, &cp)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de la contraparte.
func (r *CounterpartyRepo) Update(cp *entity.Counterparty) error {
	query := `
		UPDATE counterparties
		SET name = $1, tax_id = $2, role = $3, is_active = $4, updated_at = now()
		WHERE id = $5 AND company_id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		cp.Name, cp.TaxID, cp.Role, cp.IsActive, cp.ID, cp.CompanyID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update counterparty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
