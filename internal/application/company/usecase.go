package company

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// UseCase administración de empresas: cada empresa es una partición completa
// del libro, el registro de usuarios exige que la empresa exista primero.
type UseCase struct {
	repo repository.CompanyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CompanyRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create alta de empresa con estado inicial activo.
// El NIT duplicado lo reporta el repositorio como ErrDuplicate.
func (uc *UseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toResponse(company), nil
}

// List lista empresas con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageRequest{Limit: limit, Offset: offset},
	}, nil
}

func toResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
