package repository

import (
	"context"
	"time"

	"github.com/jhoicas/vagones-api/internal/domain/entity"
)

// DislocationFilter filtros soportados por el listado de dislocación.
// Se traducen directo a primitivas del store: igualdad, pertenencia a conjunto,
// rango y paginación. El servicio no agrega nada por su cuenta.
type DislocationFilter struct {
	WagonNumbers     []int64 // pertenencia a conjunto; vacío = sin filtro
	CounterpartyName string  // igualdad; vacío = sin filtro
	DateFrom         *time.Time
	DateTo           *time.Time
	Limit            int
	Offset           int
}

// FilterOptions listas de opciones distintas para los selectores de filtro,
// pre-agregadas por una función del servidor.
type FilterOptions struct {
	Counterparties []string
	Stations       []string
	Operations     []string
}

// DashboardSummary resumen pre-agregado para el tablero.
type DashboardSummary struct {
	TotalWagons   int64
	ActiveTenant  int64
	ActiveOwned   int64
	LastOperation *time.Time
}

// DislocationRepository consultas de solo lectura sobre el reporte de dislocación.
// Options y Summary consumen funciones con nombre del lado del servidor
// (filas ya agregadas); este servicio nunca implementa la agregación.
type DislocationRepository interface {
	List(ctx context.Context, companyID string, f DislocationFilter) ([]*entity.Dislocation, error)
	Options(ctx context.Context, companyID string) (*FilterOptions, error)
	Summary(ctx context.Context, companyID string) (*DashboardSummary, error)
}
