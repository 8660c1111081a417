package repository

import "github.com/jhoicas/vagones-api/internal/domain/entity"

// LedgerRepository es el puerto común a los dos libros de asignaciones.
// Ambos comparten la máquina de estados; solo difiere la estrategia de
// persistencia de Insert:
//   - libro de arrendatarios (tenant): append-only, cada Insert agrega una fila;
//   - libro de propios (lessor): upsert por (company_id, wagon_number), una
//     fila por vagón.
type LedgerRepository interface {
	// DeactivateActive apaga is_active en el registro activo del vagón, si existe.
	// Devuelve cuántas filas quedaron desactivadas (0 o 1 en estado sano).
	DeactivateActive(companyID string, wagonNumber int64) (int64, error)
	// Insert agrega el nuevo registro según la estrategia del libro.
	Insert(a *entity.Assignment) error
	// History devuelve todos los registros no borrados del vagón, del más
	// reciente al más antiguo (por inicio de período, con fallback a creación).
	History(companyID string, wagonNumber int64) ([]*entity.Assignment, error)
}

// OwnedLedgerRepository extiende el puerto con las operaciones exclusivas del
// libro de propios: baja suave y borrado físico (override administrativo).
type OwnedLedgerRepository interface {
	LedgerRepository
	GetByID(companyID, id string) (*entity.Assignment, error)
	// SoftRemove apaga is_owned e is_active de un registro puntual. No toca historial.
	SoftRemove(companyID, id string) error
	// HardDelete elimina físicamente el registro. Irreversible.
	HardDelete(companyID, id string) error
}
