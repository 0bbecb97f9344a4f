package dto

import "time"

// CreateQueueEntryRequest entrada para crear un turno. Queue es el ID del padre;
// start_waiting se fija en el servidor al momento de crear.
type CreateQueueEntryRequest struct {
	Queue       string `json:"queue"`
	Description string `json:"description"`
}

// UpdateQueueEntryRequest entrada para actualización completa (PUT).
// EndWaiting en nil deja el turno como "aún esperando".
type UpdateQueueEntryRequest struct {
	Queue       string     `json:"queue"`
	Description string     `json:"description"`
	EndWaiting  *time.Time `json:"end_waiting"`
}

// PatchQueueEntryRequest entrada para actualización parcial (PATCH); nil = sin cambio.
type PatchQueueEntryRequest struct {
	Queue       *string    `json:"queue"`
	Description *string    `json:"description"`
	EndWaiting  *time.Time `json:"end_waiting"`
}

// QueueEntryResponse salida de un turno.
type QueueEntryResponse struct {
	ID           string     `json:"id"`
	Queue        string     `json:"queue"`
	Description  string     `json:"description"`
	StartWaiting time.Time  `json:"start_waiting"`
	EndWaiting   *time.Time `json:"end_waiting"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatedBy    string     `json:"created_by,omitempty"`
	UpdatedBy    string     `json:"updated_by,omitempty"`
}

// QueueEntryListResponse lista paginada de turnos.
type QueueEntryListResponse struct {
	Items []QueueEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
