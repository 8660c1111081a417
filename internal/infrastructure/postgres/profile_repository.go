package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementa el puerto de la tabla profiles sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetByUserID busca el perfil del usuario. Sin fila -> nil, nil: la ausencia
// de perfil no es un fallo, el resolver sigue con la cadena de claims.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, company_id, display_name, email, updated_at
		FROM profiles
		WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.CompanyID, &p.DisplayName, &p.Email, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza el perfil del usuario.
func (r *ProfileRepo) Upsert(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, company_id, display_name, email, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE SET
			company_id   = EXCLUDED.company_id,
			display_name = EXCLUDED.display_name,
			email        = EXCLUDED.email,
			updated_at   = now()`
	_, err := r.q.Exec(context.Background(), query, p.UserID, p.CompanyID, p.DisplayName, p.Email)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
