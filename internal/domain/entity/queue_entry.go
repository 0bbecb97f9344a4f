package entity

import "time"

// QueueEntry es un cliente esperando en una Queue. StartWaiting se fija al
// crear y no se edita; EndWaiting queda en nil mientras el cliente espera.
type QueueEntry struct {
	ID           string
	QueueID      string
	Description  string
	StartWaiting time.Time
	EndWaiting   *time.Time

	// OrganizationID resuelto vía JOIN queue_entries → queues → companies.
	OrganizationID string

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
