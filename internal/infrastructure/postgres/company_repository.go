package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, organization_id, name, created_at, updated_at, created_by, updated_by`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, organization_id, name, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.OrganizationID, company.Name,
		company.CreatedAt, company.UpdatedAt, company.CreatedBy, company.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID sin scope de organización. Solo debe
// usarse para resolver referencias a padres en la capa de autorización.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByIDForOrg obtiene una empresa visible para la organización. Una empresa
// de otra organización devuelve nil, igual que un ID inexistente.
func (r *CompanyRepo) GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND organization_id = $2`
	return r.scanOne(ctx, query, id, organizationID)
}

// ListForOrg devuelve empresas de la organización con paginación. El filtro
// search se suma al scope con ILIKE (como substring, case-insensitive).
func (r *CompanyRepo) ListForOrg(ctx context.Context, organizationID string, filter repository.CompanyFilter, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE organization_id = $1`
	args := []any{organizationID}
	if filter.Search != "" {
		args = append(args, filter.Search)
		query += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente. organization_id nunca se toca.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, updated_at = $3, updated_by = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, company.ID, company.Name, company.UpdatedAt, company.UpdatedBy)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID (cascada a queues y queue_entries vía FK).
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
