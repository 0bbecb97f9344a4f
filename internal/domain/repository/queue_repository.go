package repository

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// QueueFilter filtros opcionales para el listado de filas.
type QueueFilter struct {
	CompanyID string // match exacto; se aplica encima del scope de organización
}

// QueueRepository define el puerto de persistencia para Queue.
// Las lecturas resuelven OrganizationID vía JOIN a companies.
type QueueRepository interface {
	Create(ctx context.Context, queue *entity.Queue) error
	GetByID(ctx context.Context, id string) (*entity.Queue, error)
	GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.Queue, error)
	ListForOrg(ctx context.Context, organizationID string, filter QueueFilter, limit, offset int) ([]*entity.Queue, error)
	Update(ctx context.Context, queue *entity.Queue) error
	Delete(ctx context.Context, id string) error
}
