package entity

import "time"

// Company es una empresa que atiende filas de espera. Pertenece a exactamente
// una Organization; el campo no es editable vía API (se fija al crear).
type Company struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string // username del creador
	UpdatedBy      string
}
