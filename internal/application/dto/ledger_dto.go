package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignRequest cuerpo HTTP de asignación por lote: un texto libre con números
// de vagón (multilínea/comas) y una contraparte para todos.
type AssignRequest struct {
	Wagons           string  `json:"wagons"` // texto crudo, se parsea en el servidor
	Role             string  `json:"role"`   // tenant | lessor
	CounterpartyID   *string `json:"counterparty_id,omitempty"`
	CounterpartyName string  `json:"counterparty_name"`
	LeaseStart       *string `json:"lease_start,omitempty"` // YYYY-MM-DD
	LeaseEnd         *string `json:"lease_end,omitempty"`
	DocumentRef      string  `json:"document_ref,omitempty"`
	Rate             *string `json:"rate,omitempty"` // decimal como texto
	Notes            string  `json:"notes,omitempty"`
}

// ExcludeRequest cuerpo HTTP de exclusión por lote.
type ExcludeRequest struct {
	Wagons        string `json:"wagons"`
	Role          string `json:"role"`
	ExclusionDate string `json:"exclusion_date"` // YYYY-MM-DD
}

// ItemResultDTO resultado por vagón de una operación por lote.
type ItemResultDTO struct {
	Wagon   string `json:"wagon"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// BatchResponse respuesta de Assign/Exclude por lote: éxito parcial visible.
type BatchResponse struct {
	Invalid   []string        `json:"invalid_wagons,omitempty"`
	Items     []ItemResultDTO `json:"items"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

// HistoryEntryResponse registro del historial de un vagón, ya enriquecido.
type HistoryEntryResponse struct {
	ID               string           `json:"id"`
	WagonNumber      string           `json:"wagon_number"` // 8 dígitos con ceros
	CounterpartyName string           `json:"counterparty_name,omitempty"`
	CounterpartyID   *string          `json:"counterparty_id,omitempty"`
	Role             string           `json:"role"`
	LeaseStart       *time.Time       `json:"lease_start,omitempty"`
	LeaseEnd         *time.Time       `json:"lease_end,omitempty"`
	IsActive         bool             `json:"is_active"`
	IsExclusion      bool             `json:"is_exclusion"`
	DocumentRef      string           `json:"document_ref,omitempty"`
	Rate             *decimal.Decimal `json:"rate,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	CreatedBy        string           `json:"created_by"`
	CreatedByName    string           `json:"created_by_name"`
	CreatedAt        time.Time        `json:"created_at"`
}
