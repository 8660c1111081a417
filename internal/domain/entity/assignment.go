package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles de una asignación: de qué lado del arriendo está la contraparte.
const (
	RoleTenant = "tenant" // vagón entregado en arriendo a la contraparte
	RoleLessor = "lessor" // vagón propio / tomado en arriendo de la contraparte
)

// ValidRole indica si role es uno de los dos libros soportados.
func ValidRole(role string) bool {
	return role == RoleTenant || role == RoleLessor
}

// Assignment representa un registro del libro de asignaciones vagón↔contraparte.
// Ambos libros (arrendatarios y propios) comparten esta forma; se particionan por Role.
// Invariante central: a lo sumo un registro con IsActive=true por (CompanyID, WagonNumber, Role).
type Assignment struct {
	ID               string
	CompanyID        string // partición multi-tenant; nunca visible entre empresas
	WagonNumber      int64  // se almacena numérico; se valida como cadena de 8 dígitos
	CounterpartyName string // denormalizado para mostrar sin join
	CounterpartyID   *string
	Role             string     // tenant | lessor
	LeaseStart       *time.Time // período de vigencia de negocio (no ciclo de vida del registro)
	LeaseEnd         *time.Time
	IsActive         bool
	IsDeleted        bool // soft-delete, solo libro de arrendatarios; excluido de toda lectura
	IsOwned          bool // solo libro de propios; false tras baja suave
	DocumentRef      string
	Rate             decimal.NullDecimal
	Notes            string
	CreatedBy        string // UserID del actor
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsExclusion indica si el registro es una marca de exclusión (inactivo y sin contraparte).
func (a *Assignment) IsExclusion() bool {
	return !a.IsActive && a.CounterpartyName == "" && a.CounterpartyID == nil
}

// HistoryEntry es un registro de historial enriquecido con el nombre del actor.
// CreatedByName cae al identificador crudo si el actor no se pudo resolver.
type HistoryEntry struct {
	Assignment
	CreatedByName string
}
