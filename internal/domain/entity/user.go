package entity

import "time"

// User representa un usuario del sistema. Pertenece a exactamente una
// Organization y porta el conjunto de permisos otorgados (tokens tipo
// "add_company", "change_queue"); ver internal/domain/authz.
type User struct {
	ID             string
	OrganizationID string
	Username       string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Permissions    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
