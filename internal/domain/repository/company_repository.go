package repository

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// CompanyFilter filtros opcionales para el listado de empresas.
type CompanyFilter struct {
	Search string // substring case-insensitive sobre name
}

// CompanyRepository define el puerto de persistencia para Company.
//
// Los métodos *ForOrg aplican el filtro de visibilidad: solo devuelven filas de
// la organización indicada; una fila ajena se comporta como inexistente (nil).
// GetByID es deliberadamente sin scope: lo usa la política de autorización
// para resolver referencias a padres y distinguir "no existe" de "es de otro".
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.Company, error)
	ListForOrg(ctx context.Context, organizationID string, filter CompanyFilter, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}
