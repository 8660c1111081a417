package entity

import "time"

// Counterparty representa una contraparte del directorio (arrendatario o propietario).
// El directorio es de solo lectura para el libro; un resultado vacío no es error.
type Counterparty struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string // NIT u otro identificador fiscal, informativo
	Role      string // tenant | lessor (ver constantes Role*)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
