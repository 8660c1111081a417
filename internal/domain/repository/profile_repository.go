package repository

import "github.com/jhoicas/vagones-api/internal/domain/entity"

// ProfileRepository define el puerto de la tabla de identidad (profiles).
// La usan el resolver de scope y el enriquecimiento de actores del historial.
type ProfileRepository interface {
	// GetByUserID devuelve nil, nil si no hay perfil para el usuario.
	GetByUserID(userID string) (*entity.Profile, error)
	Upsert(p *entity.Profile) error
}
