package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

var _ repository.OwnedLedgerRepository = (*OwnedLedgerRepo)(nil)

// OwnedLedgerRepo libro de propietarios sobre PostgreSQL. A diferencia del libro
// de arrendatarios, aquí hay a lo sumo una fila por (empresa, vagón): Insert hace
// upsert sobre esa clave y las escrituras repetidas solo actualizan metadatos.
type OwnedLedgerRepo struct {
	q Querier
}

// NewOwnedLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOwnedLedgerRepository(q Querier) *OwnedLedgerRepo {
	return &OwnedLedgerRepo{q: q}
}

// DeactivateActive apaga is_active de la fila del vagón, si está activa.
func (r *OwnedLedgerRepo) DeactivateActive(companyID string, wagonNumber int64) (int64, error) {
	query := `
		UPDATE owned_wagons
		SET is_active = false, updated_at = now()
		WHERE company_id = $1 AND wagon_number = $2 AND is_active`
	tag, err := r.q.Exec(context.Background(), query, companyID, wagonNumber)
	if err != nil {
		return 0, fmt.Errorf("deactivate owned wagon: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Insert inserta o actualiza la fila del vagón. El conflicto sobre
// (company_id, wagon_number) preserva el id y created_at originales.
func (r *OwnedLedgerRepo) Insert(a *entity.Assignment) error {
	query := `
		INSERT INTO owned_wagons
			(id, company_id, wagon_number, counterparty_name, counterparty_id,
			 lease_start, lease_end, is_active, is_owned, document_ref, rate,
			 notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (company_id, wagon_number) DO UPDATE SET
			counterparty_name = EXCLUDED.counterparty_name,
			counterparty_id   = EXCLUDED.counterparty_id,
			lease_start       = EXCLUDED.lease_start,
			lease_end         = EXCLUDED.lease_end,
			is_active         = EXCLUDED.is_active,
			is_owned          = EXCLUDED.is_owned,
			document_ref      = EXCLUDED.document_ref,
			rate              = EXCLUDED.rate,
			notes             = EXCLUDED.notes,
			updated_at        = now()`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.WagonNumber, a.CounterpartyName, a.CounterpartyID,
		a.LeaseStart, a.LeaseEnd, a.IsActive, a.IsOwned, a.DocumentRef, a.Rate,
		a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert owned wagon: %w", err)
	}
	return nil
}

// History devuelve las filas del vagón (a lo sumo una por la clave única),
// con el mismo orden que el libro de arrendatarios para un contrato uniforme.
func (r *OwnedLedgerRepo) History(companyID string, wagonNumber int64) ([]*entity.Assignment, error) {
	query := ownedSelect + `
		WHERE company_id = $1 AND wagon_number = $2
		ORDER BY COALESCE(lease_start, created_at) DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, wagonNumber)
	if err != nil {
		return nil, fmt.Errorf("owned wagon history: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		a, err := scanOwned(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetByID busca la fila por id dentro de la empresa. Devuelve nil si no existe.
func (r *OwnedLedgerRepo) GetByID(companyID, id string) (*entity.Assignment, error) {
	query := ownedSelect + ` WHERE company_id = $1 AND id = $2`
	row := r.q.QueryRow(context.Background(), query, companyID, id)
	a, err := scanOwnedRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owned wagon: %w", err)
	}
	return a, nil
}

// SoftRemove marca la fila como no propia y la desactiva, sin borrarla.
func (r *OwnedLedgerRepo) SoftRemove(companyID, id string) error {
	query := `
		UPDATE owned_wagons
		SET is_owned = false, is_active = false, updated_at = now()
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, companyID, id)
	if err != nil {
		return fmt.Errorf("soft remove owned wagon: %w", err)
	}
	return nil
}

// HardDelete elimina la fila físicamente. Solo lo invoca el rol admin.
func (r *OwnedLedgerRepo) HardDelete(companyID, id string) error {
	query := `DELETE FROM owned_wagons WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, companyID, id)
	if err != nil {
		return fmt.Errorf("hard delete owned wagon: %w", err)
	}
	return nil
}

const ownedSelect = `
	SELECT id, company_id, wagon_number, counterparty_name, counterparty_id,
	       lease_start, lease_end, is_active, is_owned, document_ref, rate,
	       notes, created_by, created_at, updated_at
	FROM owned_wagons`

func scanOwned(rows pgx.Rows) (*entity.Assignment, error) {
	var a entity.Assignment
	a.Role = entity.RoleLessor
	if err := rows.Scan(
		&a.ID, &a.CompanyID, &a.WagonNumber, &a.CounterpartyName, &a.CounterpartyID,
		&a.LeaseStart, &a.LeaseEnd, &a.IsActive, &a.IsOwned, &a.DocumentRef, &a.Rate,
		&a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan owned wagon: %w", err)
	}
	return &a, nil
}

func scanOwnedRow(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	a.Role = entity.RoleLessor
	if err := row.Scan(
		&a.ID, &a.CompanyID, &a.WagonNumber, &a.CounterpartyName, &a.CounterpartyID,
		&a.LeaseStart, &a.LeaseEnd, &a.IsActive, &a.IsOwned, &a.DocumentRef, &a.Rate,
		&a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
