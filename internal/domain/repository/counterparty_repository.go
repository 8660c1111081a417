package repository

import "github.com/jhoicas/vagones-api/internal/domain/entity"

// CounterpartyRepository define el puerto del directorio de contrapartes.
// El libro lo consume en modo solo lectura; Create/Update son mantenimiento.
type CounterpartyRepository interface {
	Create(cp *entity.Counterparty) error
	GetByID(id string) (*entity.Counterparty, error)
	// ListActiveByRole lista contrapartes activas del rol, ordenadas por nombre.
	// Resultado vacío no es error.
	ListActiveByRole(companyID, role string) ([]*entity.Counterparty, error)
	Update(cp *entity.Counterparty) error
}
