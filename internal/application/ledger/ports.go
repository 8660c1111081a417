package ledger

import (
	"context"

	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, con el repositorio del
// libro indicado por role atado a esa transacción. Así el par
// desactivar-activo + insertar-nuevo de un vagón es atómico: o entra completo
// o no entra, y el invariante de un-solo-activo no puede quedar roto a medias
// por un escritor concurrente.
type TxRunner interface {
	Run(ctx context.Context, role string, fn func(ledger repository.LedgerRepository) error) error
}
