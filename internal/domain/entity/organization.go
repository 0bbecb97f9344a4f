package entity

import "time"

// Organization es el tenant raíz del sistema. Toda visibilidad y autorización
// se decide comparando contra la organización del usuario autenticado.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
