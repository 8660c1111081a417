package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
)

func seedOwned(t *testing.T, uc *ledger.LedgerUseCase, owned *fakeOwnedStore) string {
	t.Helper()
	_, err := uc.AssignBatch(context.Background(), testScope(), ledger.AssignInput{
		RawWagons:        "55667788",
		Role:             entity.RoleLessor,
		CounterpartyName: "Ferrocarriles del Sur",
	})
	require.NoError(t, err)
	require.Len(t, owned.rows, 1)
	return owned.rows[0].ID
}

func TestSoftRemove_ApagaBanderasSinTocarHistorial(t *testing.T) {
	uc, _, owned, _ := newFixture()
	id := seedOwned(t, uc, owned)

	err := uc.SoftRemove(context.Background(), testScope(), id)
	require.NoError(t, err)

	require.Len(t, owned.rows, 1, "la baja suave no borra filas")
	assert.False(t, owned.rows[0].IsOwned)
	assert.False(t, owned.rows[0].IsActive)
}

func TestHardDelete_BorradoFisico(t *testing.T) {
	uc, _, owned, _ := newFixture()
	id := seedOwned(t, uc, owned)

	err := uc.HardDelete(context.Background(), testScope(), id)
	require.NoError(t, err)
	assert.Empty(t, owned.rows, "el borrado físico elimina la fila; irreversible")
}

func TestSoftRemove_RegistroDeOtraEmpresa(t *testing.T) {
	uc, _, owned, _ := newFixture()
	id := seedOwned(t, uc, owned)

	otherScope := identity.Scope{CompanyID: "co-otra", UserID: "ux"}
	err := uc.SoftRemove(context.Background(), otherScope, id)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un registro de otra empresa es invisible, no prohibido")
	assert.True(t, owned.rows[0].IsActive, "nada cambió")
}

func TestHardDelete_Precondiciones(t *testing.T) {
	uc, _, _, _ := newFixture()
	ctx := context.Background()

	err := uc.HardDelete(ctx, identity.Scope{}, "algún-id")
	assert.ErrorIs(t, err, domain.ErrUnscoped)

	err = uc.HardDelete(ctx, testScope(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
