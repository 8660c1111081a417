package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/vagones-api/internal/domain/entity"
	"github.com/jhoicas/vagones-api/internal/domain/repository"
)

var _ repository.DislocationRepository = (*DislocationRepo)(nil)

// DislocationRepo consultas de solo lectura sobre el reporte de dislocación.
// Las agregaciones (opciones de filtro, resumen del tablero) viven en funciones
// SQL del lado del servidor; aquí solo se invocan y se escanea el resultado.
type DislocationRepo struct {
	q Querier
}

// NewDislocationRepository construye el adaptador.
func NewDislocationRepository(q Querier) *DislocationRepo {
	return &DislocationRepo{q: q}
}

// List devuelve filas filtradas y paginadas, de la más reciente a la más antigua.
// Los filtros se componen dinámicamente: solo entran al WHERE los que vienen con valor.
func (r *DislocationRepo) List(ctx context.Context, companyID string, f repository.DislocationFilter) ([]*entity.Dislocation, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, company_id, wagon_number, counterparty_name, station, operation,
		       cargo_name, operation_date, loaded_at
		FROM dislocations
		WHERE company_id = $1`)
	args := []any{companyID}

	if len(f.WagonNumbers) > 0 {
		args = append(args, f.WagonNumbers)
		fmt.Fprintf(&sb, " AND wagon_number = ANY($%d)", len(args))
	}
	if f.CounterpartyName != "" {
		args = append(args, f.CounterpartyName)
		fmt.Fprintf(&sb, " AND counterparty_name = $%d", len(args))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		fmt.Fprintf(&sb, " AND operation_date >= $%d", len(args))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		fmt.Fprintf(&sb, " AND operation_date <= $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	fmt.Fprintf(&sb, " ORDER BY operation_date DESC, wagon_number LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list dislocations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dislocation
	for rows.Next() {
		var d entity.Dislocation
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.WagonNumber, &d.CounterpartyName, &d.Station,
			&d.Operation, &d.CargoName, &d.OperationDate, &d.LoadedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dislocation: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Options invoca la función del servidor que devuelve los valores distintos
// para los selectores de filtro.
func (r *DislocationRepo) Options(ctx context.Context, companyID string) (*repository.FilterOptions, error) {
	query := `SELECT counterparties, stations, operations FROM dislocation_filter_options($1)`
	var opts repository.FilterOptions
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&opts.Counterparties, &opts.Stations, &opts.Operations,
	)
	if err != nil {
		return nil, fmt.Errorf("dislocation filter options: %w", err)
	}
	return &opts, nil
}

// Summary invoca la función del servidor que pre-agrega el resumen del tablero.
func (r *DislocationRepo) Summary(ctx context.Context, companyID string) (*repository.DashboardSummary, error) {
	query := `SELECT total_wagons, active_tenant, active_owned, last_operation FROM dislocation_dashboard_summary($1)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&s.TotalWagons, &s.ActiveTenant, &s.ActiveOwned, &s.LastOperation,
	)
	if err != nil {
		return nil, fmt.Errorf("dislocation summary: %w", err)
	}
	return &s, nil
}
