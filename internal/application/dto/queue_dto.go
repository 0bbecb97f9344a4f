package dto

import "time"

// CreateQueueRequest entrada para crear una fila. Company es el ID del padre.
type CreateQueueRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// UpdateQueueRequest entrada para actualización completa (PUT); ambos campos requeridos.
type UpdateQueueRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// PatchQueueRequest entrada para actualización parcial (PATCH); nil = sin cambio.
type PatchQueueRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
}

// QueueResponse salida de una fila.
type QueueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// QueueListResponse lista paginada de filas.
type QueueListResponse struct {
	Items []QueueResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
