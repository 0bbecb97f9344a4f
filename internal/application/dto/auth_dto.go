package dto

import "time"

// RegisterRequest entrada para registrar un usuario. La organización se crea
// si no existe (get-or-create por nombre). Permissions es la lista de tokens
// a otorgar; tokens fuera de la grilla conocida se rechazan con VALIDATION.
type RegisterRequest struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	Organization string   `json:"organization"`
	Permissions  []string `json:"permissions"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Username       string    `json:"username"`
	Permissions    []string  `json:"permissions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
