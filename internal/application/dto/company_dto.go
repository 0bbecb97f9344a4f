package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. No lleva organización:
// se fija desde el principal autenticado.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// UpdateCompanyRequest entrada para actualización completa (PUT).
type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

// PatchCompanyRequest entrada para actualización parcial (PATCH); nil = sin cambio.
type PatchCompanyRequest struct {
	Name *string `json:"name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
