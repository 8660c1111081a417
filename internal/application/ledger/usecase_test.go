package ledger_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del libro. Emulan las dos estrategias de
// persistencia (append-only y upsert por vagón) para poder verificar las
// propiedades del invariante sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	modeAppend = "append"
	modeUpsert = "upsert"
)

type fakeLedgerStore struct {
	mode string
	rows []*entity.Assignment
	// failInsert simula una falla remota al insertar un vagón concreto.
	failInsert map[int64]error
}

func (f *fakeLedgerStore) DeactivateActive(companyID string, wagonNumber int64) (int64, error) {
	var n int64
	for _, r := range f.rows {
		if r.CompanyID == companyID && r.WagonNumber == wagonNumber && r.IsActive && !r.IsDeleted {
			r.IsActive = false
			n++
		}
	}
	return n, nil
}

func (f *fakeLedgerStore) Insert(a *entity.Assignment) error {
	if err, ok := f.failInsert[a.WagonNumber]; ok {
		return err
	}
	cp := *a
	if f.mode == modeUpsert {
		for i, r := range f.rows {
			if r.CompanyID == a.CompanyID && r.WagonNumber == a.WagonNumber {
				cp.ID = r.ID // el upsert conserva la fila, reemplaza el contenido
				f.rows[i] = &cp
				return nil
			}
		}
	}
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeLedgerStore) History(companyID string, wagonNumber int64) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, r := range f.rows {
		if r.CompanyID == companyID && r.WagonNumber == wagonNumber && !r.IsDeleted {
			cp := *r
			out = append(out, &cp)
		}
	}
	key := func(a *entity.Assignment) time.Time {
		if a.LeaseStart != nil {
			return *a.LeaseStart
		}
		return a.CreatedAt
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]).After(key(out[j])) })
	return out, nil
}

func (f *fakeLedgerStore) activeCount(companyID string, wagonNumber int64) int {
	n := 0
	for _, r := range f.rows {
		if r.CompanyID == companyID && r.WagonNumber == wagonNumber && r.IsActive && !r.IsDeleted {
			n++
		}
	}
	return n
}

type fakeOwnedStore struct {
	fakeLedgerStore
}

func (f *fakeOwnedStore) GetByID(companyID, id string) (*entity.Assignment, error) {
	for _, r := range f.rows {
		if r.CompanyID == companyID && r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOwnedStore) SoftRemove(companyID, id string) error {
	for _, r := range f.rows {
		if r.CompanyID == companyID && r.ID == id {
			r.IsOwned = false
			r.IsActive = false
			return nil
		}
	}
	return errors.New("fila no encontrada")
}

func (f *fakeOwnedStore) HardDelete(companyID, id string) error {
	for i, r := range f.rows {
		if r.CompanyID == companyID && r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("fila no encontrada")
}

// fakeTxRunner entrega el repositorio del libro pedido; no hay transacción
// real porque los fakes son en memoria y secuenciales.
type fakeTxRunner struct {
	tenant *fakeLedgerStore
	owned  *fakeOwnedStore
}

func (f *fakeTxRunner) Run(ctx context.Context, role string, fn func(repository.LedgerRepository) error) error {
	if role == entity.RoleLessor {
		return fn(f.owned)
	}
	return fn(f.tenant)
}

type fakeProfiles struct {
	byUser map[string]*entity.Profile
}

func (f *fakeProfiles) GetByUserID(userID string) (*entity.Profile, error) {
	return f.byUser[userID], nil
}

func (f *fakeProfiles) Upsert(p *entity.Profile) error { return nil }

// newFixture construye el caso de uso sobre stores limpios.
func newFixture() (*ledger.LedgerUseCase, *fakeLedgerStore, *fakeOwnedStore, *fakeProfiles) {
	tenant := &fakeLedgerStore{mode: modeAppend}
	owned := &fakeOwnedStore{fakeLedgerStore: fakeLedgerStore{mode: modeUpsert}}
	profiles := &fakeProfiles{byUser: map[string]*entity.Profile{}}
	uc := ledger.NewLedgerUseCase(&fakeTxRunner{tenant: tenant, owned: owned}, tenant, owned, profiles)
	return uc, tenant, owned, profiles
}

func testScope() identity.Scope {
	return identity.Scope{CompanyID: "co-1", UserID: "user-1"}
}
