package dislocation

import (
	"context"
	"time"

	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
	"github.com/jhoicas/vagones-api/internal/domain/wagon"
)

// ReportUseCase navegación de solo lectura del reporte de dislocación.
// Los filtros se traducen a primitivas del store; las opciones y el resumen
// llegan pre-agregados por funciones del servidor — aquí no se agrega nada.
type ReportUseCase struct {
	repo repository.DislocationRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.DislocationRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// List devuelve filas filtradas (vagones, contraparte, rango de fechas) con
// paginación. Tokens de vagón inválidos se ignoran en silencio: este es un
// filtro de lectura, no una escritura del libro.
func (uc *ReportUseCase) List(ctx context.Context, scope identity.Scope, q dto.DislocationQuery) ([]dto.DislocationResponse, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	q.DefaultPage()

	f := repository.DislocationFilter{
		CounterpartyName: q.Counterparty,
		Limit:            q.Limit,
		Offset:           q.Offset,
	}
	valid, _ := wagon.ParseNumbers(q.Wagons)
	for _, token := range valid {
		if n, ok := wagon.Normalize(token); ok {
			f.WagonNumbers = append(f.WagonNumbers, n)
		}
	}
	if t, err := parseDate(q.DateFrom); err == nil && t != nil {
		f.DateFrom = t
	}
	if t, err := parseDate(q.DateTo); err == nil && t != nil {
		f.DateTo = t
	}

	rows, err := uc.repo.List(ctx, scope.CompanyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DislocationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DislocationResponse{
			WagonNumber:      wagon.Format(r.WagonNumber),
			CounterpartyName: r.CounterpartyName,
			Station:          r.Station,
			Operation:        r.Operation,
			CargoName:        r.CargoName,
			OperationDate:    r.OperationDate,
			LoadedAt:         r.LoadedAt,
		})
	}
	return out, nil
}

// Options listas de opciones distintas para los selectores de filtro.
func (uc *ReportUseCase) Options(ctx context.Context, scope identity.Scope) (*dto.FilterOptionsResponse, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	opts, err := uc.repo.Options(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}
	return &dto.FilterOptionsResponse{
		Counterparties: opts.Counterparties,
		Stations:       opts.Stations,
		Operations:     opts.Operations,
	}, nil
}

// Summary resumen pre-agregado del tablero.
func (uc *ReportUseCase) Summary(ctx context.Context, scope identity.Scope) (*dto.DashboardSummaryResponse, error) {
	if scope.IsZero() {
		return nil, domain.ErrUnscoped
	}
	s, err := uc.repo.Summary(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		TotalWagons:   s.TotalWagons,
		ActiveTenant:  s.ActiveTenant,
		ActiveOwned:   s.ActiveOwned,
		LastOperation: s.LastOperation,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
