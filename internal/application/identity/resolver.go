package identity

import (
	"context"

	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// Claves del metadata de sesión donde puede venir la empresa.
// "companyId" (camelCase) es el campo heredado de sesiones del sistema anterior.
const (
	MetaCompanyID       = "company_id"
	MetaCompanyIDLegacy = "companyId"
)

// Session es lo que el transporte sabe del usuario autenticado: identificador,
// email y la bolsa de metadata embebida en la sesión (claims del token).
type Session struct {
	UserID   string
	Email    string
	Metadata map[string]string
}

// Scope identifica la partición de empresa bajo la que opera el usuario.
// Se resuelve una vez por request y se pasa explícito a cada operación del
// libro; ningún componente lo vuelve a derivar por su cuenta.
type Scope struct {
	CompanyID string
	UserID    string
}

// IsZero indica scope vacío. Un scope vacío es falla dura de precondición
// para cualquier escritura; el llamador debe abortar, nunca continuar.
func (s Scope) IsZero() bool {
	return s.CompanyID == ""
}

// Resolver deriva el scope del usuario con una cadena de fallbacks ordenada:
// (1) registro de perfil por user id, (2) metadata "company_id",
// (3) metadata heredada "companyId". Primera respuesta no vacía gana.
type Resolver struct {
	profileRepo repository.ProfileRepository
}

// NewResolver construye el resolver.
func NewResolver(profileRepo repository.ProfileRepository) *Resolver {
	return &Resolver{profileRepo: profileRepo}
}

// Resolve devuelve el scope del usuario, o un Scope con CompanyID vacío si
// ninguna fuente lo aporta. El error solo reporta fallas de infraestructura;
// la ausencia de empresa no es error aquí (lo es en el caso de uso).
func (r *Resolver) Resolve(ctx context.Context, s Session) (Scope, error) {
	scope := Scope{UserID: s.UserID}

	if s.UserID != "" {
		profile, err := r.profileRepo.GetByUserID(s.UserID)
		if err != nil {
			return scope, err
		}
		if profile != nil && profile.CompanyID != "" {
			scope.CompanyID = profile.CompanyID
			return scope, nil
		}
	}

	if v := s.Metadata[MetaCompanyID]; v != "" {
		scope.CompanyID = v
		return scope, nil
	}
	if v := s.Metadata[MetaCompanyIDLegacy]; v != "" {
		scope.CompanyID = v
		return scope, nil
	}

	return scope, nil
}
