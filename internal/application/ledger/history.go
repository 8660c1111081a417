package ledger

import (
	"context"
	"strings"

	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/wagon"
)

// History reconstruye el historial de un vagón: todos los registros no
// borrados de la clave, del más reciente al más antiguo (por inicio de período
// de negocio, con fallback a la fecha de creación), cada uno enriquecido con
// el nombre del actor que lo creó. La resolución del actor es best-effort: si
// el perfil no existe o falla, se conserva el identificador crudo.
func (uc *LedgerUseCase) History(ctx context.Context, scope identity.Scope, wagonText, role string) ([]*entity.HistoryEntry, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	num, ok := wagon.Normalize(strings.TrimSpace(wagonText))
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	records, err := uc.repoFor(role).History(scope.CompanyID, num)
	if err != nil {
		return nil, err
	}

	// Un lookup por actor distinto; los nombres se cachean dentro del request.
	names := map[string]string{}
	entries := make([]*entity.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entry := &entity.HistoryEntry{Assignment: *rec, CreatedByName: rec.CreatedBy}
		if rec.CreatedBy != "" {
			name, seen := names[rec.CreatedBy]
			if !seen {
				if profile, perr := uc.profileRepo.GetByUserID(rec.CreatedBy); perr == nil && profile != nil && profile.DisplayName != "" {
					name = profile.DisplayName
				} else {
					name = rec.CreatedBy
				}
				names[rec.CreatedBy] = name
			}
			entry.CreatedByName = name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
