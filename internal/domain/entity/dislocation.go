package entity

import "time"

// Dislocation representa una fila del reporte de dislocación (ubicación/estado
// de un vagón en una fecha de operación). Solo lectura: las filas llegan desde
// el proveedor externo de datos; este servicio no las agrega ni las modifica.
type Dislocation struct {
	ID               string
	CompanyID        string
	WagonNumber      int64
	CounterpartyName string
	Station          string
	Operation        string
	CargoName        string
	OperationDate    time.Time
	LoadedAt         *time.Time
}
