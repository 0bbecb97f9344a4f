package entity

import "time"

// Queue es una fila de espera de una Company. La organización dueña se
// resuelve transitivamente vía Queue → Company → Organization.
type Queue struct {
	ID        string
	CompanyID string
	Name      string

	// OrganizationID no es columna propia de queues: se resuelve con un JOIN a
	// companies en las lecturas para poder decidir pertenencia sin otra consulta.
	OrganizationID string

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
