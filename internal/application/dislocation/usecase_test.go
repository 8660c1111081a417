package dislocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/vagones-api/internal/application/dislocation"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

type fakeDislocationRepo struct {
	lastCompany string
	lastFilter  repository.DislocationFilter
	rows        []*entity.Dislocation
	options     repository.FilterOptions
	summary     repository.DashboardSummary
}

func (f *fakeDislocationRepo) List(ctx context.Context, companyID string, filter repository.DislocationFilter) ([]*entity.Dislocation, error) {
	f.lastCompany = companyID
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeDislocationRepo) Options(ctx context.Context, companyID string) (*repository.FilterOptions, error) {
	f.lastCompany = companyID
	o := f.options
	return &o, nil
}

func (f *fakeDislocationRepo) Summary(ctx context.Context, companyID string) (*repository.DashboardSummary, error) {
	f.lastCompany = companyID
	s := f.summary
	return &s, nil
}

func scope() identity.Scope { return identity.Scope{CompanyID: "co-1", UserID: "u1"} }

func TestList_TraducedFiltrosAPrimitivas(t *testing.T) {
	repo := &fakeDislocationRepo{}
	uc := dislocation.NewReportUseCase(repo)

	_, err := uc.List(context.Background(), scope(), dto.DislocationQuery{
		Wagons:       "00123456\nbasura, 87654321",
		Counterparty: "ACME",
		DateFrom:     "2026-01-01",
		DateTo:       "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "co-1", repo.lastCompany)
	assert.Equal(t, []int64{123456, 87654321}, repo.lastFilter.WagonNumbers,
		"tokens inválidos se ignoran en silencio: es un filtro de lectura")
	assert.Equal(t, "ACME", repo.lastFilter.CounterpartyName)
	require.NotNil(t, repo.lastFilter.DateFrom)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.DateFrom)
	require.NotNil(t, repo.lastFilter.DateTo)
}

func TestList_PaginacionPorDefecto(t *testing.T) {
	repo := &fakeDislocationRepo{}
	uc := dislocation.NewReportUseCase(repo)

	_, err := uc.List(context.Background(), scope(), dto.DislocationQuery{})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

func TestList_FormateaNumeroDeVagon(t *testing.T) {
	loaded := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeDislocationRepo{rows: []*entity.Dislocation{
		{WagonNumber: 123456, CounterpartyName: "ACME", Station: "Norte",
			Operation: "carga", OperationDate: loaded, LoadedAt: &loaded},
	}}
	uc := dislocation.NewReportUseCase(repo)

	rows, err := uc.List(context.Background(), scope(), dto.DislocationQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "00123456", rows[0].WagonNumber, "el número sale con ceros a la izquierda")
}

func TestOptionsYSummary_Passthrough(t *testing.T) {
	last := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeDislocationRepo{
		options: repository.FilterOptions{
			Counterparties: []string{"ACME"},
			Stations:       []string{"Norte", "Sur"},
			Operations:     []string{"carga"},
		},
		summary: repository.DashboardSummary{TotalWagons: 42, ActiveTenant: 30, ActiveOwned: 12, LastOperation: &last},
	}
	uc := dislocation.NewReportUseCase(repo)

	opts, err := uc.Options(context.Background(), scope())
	require.NoError(t, err)
	assert.Equal(t, []string{"Norte", "Sur"}, opts.Stations)

	s, err := uc.Summary(context.Background(), scope())
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.TotalWagons)
	require.NotNil(t, s.LastOperation)
	assert.Equal(t, last, *s.LastOperation)
}

func TestReporte_Precondiciones(t *testing.T) {
	uc := dislocation.NewReportUseCase(&fakeDislocationRepo{})

	_, err := uc.List(context.Background(), identity.Scope{}, dto.DislocationQuery{})
	assert.ErrorIs(t, err, domain.ErrUnscoped)

	_, err = uc.Options(context.Background(), identity.Scope{})
	assert.ErrorIs(t, err, domain.ErrUnscoped)

	_, err = uc.Summary(context.Background(), identity.Scope{})
	assert.ErrorIs(t, err, domain.ErrUnscoped)
}
