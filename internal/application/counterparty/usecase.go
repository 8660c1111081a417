package counterparty

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// DirectoryUseCase directorio de contrapartes: lectura para los selectores del
// libro y mantenimiento básico.
type DirectoryUseCase struct {
	repo repository.CounterpartyRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(repo repository.CounterpartyRepository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

// ListActive lista contrapartes activas del rol, ordenadas por nombre.
// Resultado vacío no es error: el operador simplemente no tiene opciones.
func (uc *DirectoryUseCase) ListActive(ctx context.Context, scope identity.Scope, role string) ([]dto.CounterpartyResponse, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListActiveByRole(scope.CompanyID, role)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CounterpartyResponse, 0, len(list))
	for _, cp := range list {
		out = append(out, toResponse(cp))
	}
	return out, nil
}

// Create alta de contraparte en el directorio.
func (uc *DirectoryUseCase) Create(ctx context.Context, scope identity.Scope, in dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	if in.Name == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cp := &entity.Counterparty{
		ID:        uuid.New().String(),
		CompanyID: scope.CompanyID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Role:      in.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cp); err != nil {
		return nil, err
	}
	resp := toResponse(cp)
	return &resp, nil
}

func toResponse(cp *entity.Counterparty) dto.CounterpartyResponse {
	return dto.CounterpartyResponse{
		ID:        cp.ID,
		Name:      cp.Name,
		TaxID:     cp.TaxID,
		Role:      cp.Role,
		IsActive:  cp.IsActive,
		CreatedAt: cp.CreatedAt,
	}
}
