package dto

import "time"

// DislocationQuery filtros del listado de dislocación (query params).
type DislocationQuery struct {
	Wagons       string `query:"wagons"` // texto libre, se parsea como en el libro
	Counterparty string `query:"counterparty"`
	DateFrom     string `query:"date_from"` // YYYY-MM-DD
	DateTo       string `query:"date_to"`
	PageRequest
}

// DislocationResponse fila del reporte.
type DislocationResponse struct {
	WagonNumber      string     `json:"wagon_number"`
	CounterpartyName string     `json:"counterparty_name,omitempty"`
	Station          string     `json:"station"`
	Operation        string     `json:"operation"`
	CargoName        string     `json:"cargo_name,omitempty"`
	OperationDate    time.Time  `json:"operation_date"`
	LoadedAt         *time.Time `json:"loaded_at,omitempty"`
}

// FilterOptionsResponse opciones distintas para los selectores de filtro.
type FilterOptionsResponse struct {
	Counterparties []string `json:"counterparties"`
	Stations       []string `json:"stations"`
	Operations     []string `json:"operations"`
}

// DashboardSummaryResponse resumen del tablero.
type DashboardSummaryResponse struct {
	TotalWagons   int64      `json:"total_wagons"`
	ActiveTenant  int64      `json:"active_tenant"`
	ActiveOwned   int64      `json:"active_owned"`
	LastOperation *time.Time `json:"last_operation,omitempty"`
}
