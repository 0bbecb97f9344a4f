package repository

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	GetByName(ctx context.Context, name string) (*entity.Organization, error)
}
