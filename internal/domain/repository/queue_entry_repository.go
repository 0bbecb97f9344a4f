package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// QueueEntryFilter filtros opcionales para el listado de turnos.
type QueueEntryFilter struct {
	QueueID          string     // match exacto
	Date             *time.Time // match por fecha (día) de start_waiting
	WaitingEndIsNull *bool      // true = aún esperando, false = ya atendidos
}

// QueueEntryRepository define el puerto de persistencia para QueueEntry.
// Las lecturas resuelven OrganizationID vía JOIN queues → companies.
type QueueEntryRepository interface {
	Create(ctx context.Context, entry *entity.QueueEntry) error
	GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.QueueEntry, error)
	ListForOrg(ctx context.Context, organizationID string, filter QueueEntryFilter, limit, offset int) ([]*entity.QueueEntry, error)
	Update(ctx context.Context, entry *entity.QueueEntry) error
	Delete(ctx context.Context, id string) error
}
