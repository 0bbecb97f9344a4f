package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que OrganizationRepo implementa repository.OrganizationRepository.
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	db Querier
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(db Querier) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID. Devuelve nil si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// GetByName obtiene una organización por nombre (único). Devuelve nil si no existe.
func (r *OrganizationRepo) GetByName(ctx context.Context, name string) (*entity.Organization, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM organizations WHERE name = $1`
	var o entity.Organization
	err := r.db.QueryRow(ctx, query, name).Scan(&o.ID, &o.Name, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by name: %w", err)
	}
	return &o, nil
}
