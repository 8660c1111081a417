package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
	"github.com/jhoicas/vagones-api/internal/domain/wagon"
)

// LedgerUseCase operaciones del libro de asignaciones vagón↔contraparte.
// Máquina de estados por (empresa, vagón, libro):
// sin-asignar → activo → superado → excluido → sin-asignar | removido (solo propios).
// Las mutaciones de un vagón van por TxRunner (atómicas); las lecturas van
// directo a los repositorios del pool.
type LedgerUseCase struct {
	txRunner    TxRunner
	tenantRepo  repository.LedgerRepository
	ownedRepo   repository.OwnedLedgerRepository
	profileRepo repository.ProfileRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	tenantRepo repository.LedgerRepository,
	ownedRepo repository.OwnedLedgerRepository,
	profileRepo repository.ProfileRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		tenantRepo:  tenantRepo,
		ownedRepo:   ownedRepo,
		profileRepo: profileRepo,
	}
}

// AssignInput entrada de asignación por lote: muchos vagones, una contraparte.
type AssignInput struct {
	RawWagons        string // texto libre; el parser separa válidos de inválidos
	Role             string
	CounterpartyID   *string
	CounterpartyName string
	LeaseStart       *time.Time
	LeaseEnd         *time.Time
	DocumentRef      string
	Rate             decimal.NullDecimal
	Notes            string
}

// ExcludeInput entrada de exclusión por lote: sin contraparte.
type ExcludeInput struct {
	RawWagons     string
	Role          string
	ExclusionDate time.Time
}

// AssignBatch procesa cada vagón válido de forma independiente: una
// transacción por vagón que desactiva el registro activo (si existe) e inserta
// el nuevo registro activo. Un vagón que falla no revierte a los demás; los
// errores se acumulan por ítem y el procesamiento continúa. Colisión con un
// activo de otra contraparte simplemente lo supera: gana el último escritor.
// Un vagón repetido dentro del lote se procesa dos veces, en orden; cada
// ocurrencia supera a la anterior.
func (uc *LedgerUseCase) AssignBatch(ctx context.Context, scope identity.Scope, in AssignInput) (*BatchResult, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	if !entity.ValidRole(in.Role) || in.CounterpartyName == "" {
		return nil, domain.ErrInvalidInput
	}

	valid, invalid := wagon.ParseNumbers(in.RawWagons)
	result := &BatchResult{Invalid: invalid}
	if len(valid) == 0 {
		return result, domain.ErrNoValidWagons
	}

	for _, token := range valid {
		num, _ := wagon.Normalize(token)
		now := time.Now()
		rec := &entity.Assignment{
			ID:               uuid.New().String(),
			CompanyID:        scope.CompanyID,
			WagonNumber:      num,
			CounterpartyName: in.CounterpartyName,
			CounterpartyID:   in.CounterpartyID,
			Role:             in.Role,
			LeaseStart:       in.LeaseStart,
			LeaseEnd:         in.LeaseEnd,
			IsActive:         true,
			IsOwned:          in.Role == entity.RoleLessor,
			DocumentRef:      in.DocumentRef,
			Rate:             in.Rate,
			Notes:            in.Notes,
			CreatedBy:        scope.UserID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		err := uc.txRunner.Run(ctx, in.Role, func(ledger repository.LedgerRepository) error {
			if _, err := ledger.DeactivateActive(scope.CompanyID, num); err != nil {
				return err
			}
			return ledger.Insert(rec)
		})
		result.Items = append(result.Items, ItemResult{Wagon: token, OK: err == nil, Err: err})
	}
	return result, nil
}

// ExcludeBatch marca la salida deliberada de cada vagón: desactiva el registro
// activo e inserta un registro terminal inactivo sin contraparte, cuyo inicio
// de período es la fecha de exclusión. Queda constancia auditable de cuándo y
// que la exclusión ocurrió. Mismas semánticas de lote que AssignBatch.
func (uc *LedgerUseCase) ExcludeBatch(ctx context.Context, scope identity.Scope, in ExcludeInput) (*BatchResult, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	if !entity.ValidRole(in.Role) || in.ExclusionDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	valid, invalid := wagon.ParseNumbers(in.RawWagons)
	result := &BatchResult{Invalid: invalid}
	if len(valid) == 0 {
		return result, domain.ErrNoValidWagons
	}

	for _, token := range valid {
		num, _ := wagon.Normalize(token)
		now := time.Now()
		exclusionDate := in.ExclusionDate
		rec := &entity.Assignment{
			ID:          uuid.New().String(),
			CompanyID:   scope.CompanyID,
			WagonNumber: num,
			Role:        in.Role,
			LeaseStart:  &exclusionDate,
			IsActive:    false,
			CreatedBy:   scope.UserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err := uc.txRunner.Run(ctx, in.Role, func(ledger repository.LedgerRepository) error {
			if _, err := ledger.DeactivateActive(scope.CompanyID, num); err != nil {
				return err
			}
			return ledger.Insert(rec)
		})
		result.Items = append(result.Items, ItemResult{Wagon: token, OK: err == nil, Err: err})
	}
	return result, nil
}

// SoftRemove baja suave de un registro del libro de propios: apaga
// is_owned/is_active por clave primaria. No toca el historial.
func (uc *LedgerUseCase) SoftRemove(ctx context.Context, scope identity.Scope, id string) error {
	if scope.IsZero() {
		return domain.ErrUnscoped
	}
	rec, err := uc.ownedRepo.GetByID(scope.CompanyID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.ownedRepo.SoftRemove(scope.CompanyID, id)
}

// HardDelete borrado físico de un registro del libro de propios. Override
// administrativo explícito, fuera de la garantía append-only; irreversible.
func (uc *LedgerUseCase) HardDelete(ctx context.Context, scope identity.Scope, id string) error {
	if scope.IsZero() {
		return domain.ErrUnscoped
	}
	rec, err := uc.ownedRepo.GetByID(scope.CompanyID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.ownedRepo.HardDelete(scope.CompanyID, id)
}

// repoFor devuelve el repositorio de lectura del libro según el rol.
func (uc *LedgerUseCase) repoFor(role string) repository.LedgerRepository {
	if role == entity.RoleLessor {
		return uc.ownedRepo
	}
	return uc.tenantRepo
}
