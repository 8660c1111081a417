package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
)

// Escenario A: un vagón válido y un token inválido; se crea exactamente un
// registro activo con la contraparte indicada.
func TestAssignBatch_ValidosEInvalidos(t *testing.T) {
	uc, tenant, _, _ := newFixture()

	res, err := uc.AssignBatch(context.Background(), testScope(), ledger.AssignInput{
		RawWagons:        "12345678, 12345678x",
		Role:             entity.RoleTenant,
		CounterpartyName: "ACME",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"12345678x"}, res.Invalid)
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].OK)
	assert.Equal(t, "12345678", res.Items[0].Wagon)

	assert.Equal(t, 1, tenant.activeCount("co-1", 12345678))
	require.Len(t, tenant.rows, 1)
	assert.Equal(t, "ACME", tenant.rows[0].CounterpartyName)
	assert.Equal(t, "user-1", tenant.rows[0].CreatedBy)
}

// Escenario B: una segunda asignación supera a la primera. Queda exactamente
// un activo (la nueva contraparte) y el historial conserva ambos registros,
// el más reciente primero.
func TestAssignBatch_SupersedeUltimoEscritorGana(t *testing.T) {
	uc, tenant, _, _ := newFixture()
	ctx := context.Background()
	scope := testScope()

	_, err := uc.AssignBatch(ctx, scope, ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "ACME",
	})
	require.NoError(t, err)
	_, err = uc.AssignBatch(ctx, scope, ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "BETA",
	})
	require.NoError(t, err)

	// P2: exactamente un activo tras operaciones secuenciales.
	assert.Equal(t, 1, tenant.activeCount("co-1", 12345678))

	history, err := uc.History(ctx, scope, "12345678", entity.RoleTenant)
	require.NoError(t, err)
	require.Len(t, history, 2, "el historial es append-only: 2 registros")
	assert.Equal(t, "BETA", history[0].CounterpartyName, "más reciente primero")
	assert.True(t, history[0].IsActive)
	assert.Equal(t, "ACME", history[1].CounterpartyName)
	assert.False(t, history[1].IsActive, "el registro superado queda inactivo")
}

// Escenario D: lote de 3 vagones donde el segundo falla remotamente. Los otros
// dos quedan escritos y la lista de errores nombra exactamente al vagón 2.
func TestAssignBatch_FallaParcialContinua(t *testing.T) {
	uc, tenant, _, _ := newFixture()
	tenant.failInsert = map[int64]error{22222222: errors.New("timeout del store")}

	res, err := uc.AssignBatch(context.Background(), testScope(), ledger.AssignInput{
		RawWagons:        "11111111\n22222222\n33333333",
		Role:             entity.RoleTenant,
		CounterpartyName: "ACME",
	})
	require.NoError(t, err, "la falla por ítem no es error del lote")

	require.Len(t, res.Items, 3)
	assert.Equal(t, 2, res.Succeeded())
	assert.Equal(t, 1, res.Failed())
	assert.True(t, res.Items[0].OK)
	assert.False(t, res.Items[1].OK)
	assert.Equal(t, "22222222", res.Items[1].Wagon)
	assert.ErrorContains(t, res.Items[1].Err, "timeout")
	assert.True(t, res.Items[2].OK, "el procesamiento continúa tras la falla")

	assert.Equal(t, 1, tenant.activeCount("co-1", 11111111))
	assert.Equal(t, 0, tenant.activeCount("co-1", 22222222))
	assert.Equal(t, 1, tenant.activeCount("co-1", 33333333))
}

// P4: en el libro de propios, asignar dos veces el mismo vagón con la misma
// contraparte deja exactamente una fila, con la metadata más reciente.
func TestAssignBatch_PropiosUpsertIdempotente(t *testing.T) {
	uc, _, owned, _ := newFixture()
	ctx := context.Background()
	scope := testScope()

	for i := 0; i < 2; i++ {
		_, err := uc.AssignBatch(ctx, scope, ledger.AssignInput{
			RawWagons:        "44556677",
			Role:             entity.RoleLessor,
			CounterpartyName: "Ferrocarriles del Sur",
			Notes:            map[int]string{0: "primera", 1: "segunda"}[i],
		})
		require.NoError(t, err)
	}

	require.Len(t, owned.rows, 1, "una sola fila por vagón en el libro de propios")
	assert.Equal(t, "segunda", owned.rows[0].Notes, "el upsert conserva la metadata más reciente")
	assert.True(t, owned.rows[0].IsActive)
	assert.True(t, owned.rows[0].IsOwned)
	assert.Equal(t, 1, owned.activeCount("co-1", 44556677))
}

// P5: las operaciones de una empresa jamás leen ni mutan registros de otra.
func TestAssignBatch_AislamientoDeScope(t *testing.T) {
	uc, tenant, _, _ := newFixture()
	ctx := context.Background()
	scopeA := identity.Scope{CompanyID: "co-A", UserID: "ua"}
	scopeB := identity.Scope{CompanyID: "co-B", UserID: "ub"}

	_, err := uc.AssignBatch(ctx, scopeA, ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "ACME",
	})
	require.NoError(t, err)
	_, err = uc.AssignBatch(ctx, scopeB, ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "BETA",
	})
	require.NoError(t, err)

	// El mismo vagón tiene un activo por empresa; ninguna superó a la otra.
	assert.Equal(t, 1, tenant.activeCount("co-A", 12345678))
	assert.Equal(t, 1, tenant.activeCount("co-B", 12345678))

	histA, err := uc.History(ctx, scopeA, "12345678", entity.RoleTenant)
	require.NoError(t, err)
	require.Len(t, histA, 1)
	assert.Equal(t, "ACME", histA[0].CounterpartyName)
}

// Pregunta abierta resuelta: duplicados dentro de un lote se procesan como dos
// operaciones secuenciales sobre la misma clave (comportamiento conservado).
func TestAssignBatch_DuplicadosEnUnLote(t *testing.T) {
	uc, tenant, _, _ := newFixture()

	res, err := uc.AssignBatch(context.Background(), testScope(), ledger.AssignInput{
		RawWagons:        "12345678,12345678",
		Role:             entity.RoleTenant,
		CounterpartyName: "ACME",
	})
	require.NoError(t, err)

	assert.Len(t, res.Items, 2, "cada ocurrencia produce su propio resultado")
	assert.Len(t, tenant.rows, 2, "dos filas en el libro append-only")
	assert.Equal(t, 1, tenant.activeCount("co-1", 12345678),
		"la segunda ocurrencia superó a la primera; el invariante se sostiene")
}

func TestAssignBatch_Precondiciones(t *testing.T) {
	uc, tenant, _, _ := newFixture()
	ctx := context.Background()

	// Sin scope: nada se escribe.
	_, err := uc.AssignBatch(ctx, identity.Scope{}, ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "ACME",
	})
	assert.ErrorIs(t, err, domain.ErrUnscoped)

	// Rol desconocido.
	_, err = uc.AssignBatch(ctx, testScope(), ledger.AssignInput{
		RawWagons: "12345678", Role: "otro", CounterpartyName: "ACME",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin contraparte.
	_, err = uc.AssignBatch(ctx, testScope(), ledger.AssignInput{
		RawWagons: "12345678", Role: entity.RoleTenant,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin vagones válidos: el error llega antes de cualquier llamada remota y
	// el resultado conserva los tokens inválidos para el usuario.
	res, err := uc.AssignBatch(ctx, testScope(), ledger.AssignInput{
		RawWagons: "abc, 123", Role: entity.RoleTenant, CounterpartyName: "ACME",
	})
	assert.ErrorIs(t, err, domain.ErrNoValidWagons)
	assert.Equal(t, []string{"abc", "123"}, res.Invalid)

	assert.Empty(t, tenant.rows, "ninguna precondición fallida tocó el store")
}

// P3: el conteo de registros no borrados nunca decrece con Assign/Exclude.
func TestLedger_HistorialMonotono(t *testing.T) {
	uc, tenant, _, _ := newFixture()
	ctx := context.Background()
	scope := testScope()

	prev := 0
	steps := []func() error{
		func() error {
			_, err := uc.AssignBatch(ctx, scope, ledger.AssignInput{
				RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "ACME"})
			return err
		},
		func() error {
			_, err := uc.AssignBatch(ctx, scope, ledger.AssignInput{
				RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "BETA"})
			return err
		},
		func() error {
			_, err := uc.ExcludeBatch(ctx, scope, ledger.ExcludeInput{
				RawWagons: "12345678", Role: entity.RoleTenant,
				ExclusionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
			return err
		},
		func() error {
			_, err := uc.AssignBatch(ctx, scope, ledger.AssignInput{
				RawWagons: "12345678", Role: entity.RoleTenant, CounterpartyName: "GAMA"})
			return err
		},
	}
	for i, step := range steps {
		require.NoError(t, step())
		hist, err := uc.History(ctx, scope, "12345678", entity.RoleTenant)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(hist), prev, "paso %d: el historial nunca decrece", i)
		assert.LessOrEqual(t, tenant.activeCount("co-1", 12345678), 1,
			"paso %d: jamás más de un activo", i)
		prev = len(hist)
	}
	assert.Equal(t, 4, prev)
}
