package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que QueueRepo implementa repository.QueueRepository.
var _ repository.QueueRepository = (*QueueRepo)(nil)

// QueueRepo implementación del puerto QueueRepository sobre PostgreSQL.
// Todas las lecturas hacen JOIN a companies para resolver la organización
// dueña en la misma consulta.
type QueueRepo struct {
	db Querier
}

// NewQueueRepository construye el adaptador de persistencia para filas.
func NewQueueRepository(db Querier) *QueueRepo {
	return &QueueRepo{db: db}
}

const queueSelect = `
	SELECT q.id, q.company_id, q.name, c.organization_id,
	       q.created_at, q.updated_at, q.created_by, q.updated_by
	FROM queues q
	JOIN companies c ON c.id = q.company_id`

// Create persiste una nueva fila.
func (r *QueueRepo) Create(ctx context.Context, queue *entity.Queue) error {
	query := `
		INSERT INTO queues (id, company_id, name, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		queue.ID, queue.CompanyID, queue.Name,
		queue.CreatedAt, queue.UpdatedAt, queue.CreatedBy, queue.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert queue: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por ID sin scope de organización. Solo debe usarse
// para resolver referencias a padres en la capa de autorización.
func (r *QueueRepo) GetByID(ctx context.Context, id string) (*entity.Queue, error) {
	return r.scanOne(ctx, queueSelect+` WHERE q.id = $1`, id)
}

// GetByIDForOrg obtiene una fila visible para la organización (ajena ≡ nil).
func (r *QueueRepo) GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.Queue, error) {
	return r.scanOne(ctx, queueSelect+` WHERE q.id = $1 AND c.organization_id = $2`, id, organizationID)
}

// ListForOrg devuelve filas de la organización; company_id se suma al scope.
func (r *QueueRepo) ListForOrg(ctx context.Context, organizationID string, filter repository.QueueFilter, limit, offset int) ([]*entity.Queue, error) {
	query := queueSelect + ` WHERE c.organization_id = $1`
	args := []any{organizationID}
	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		query += fmt.Sprintf(` AND q.company_id = $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY q.name LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list queues: %w", err)
	}
	defer rows.Close()

	var list []*entity.Queue
	for rows.Next() {
		var q entity.Queue
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.Name, &q.OrganizationID,
			&q.CreatedAt, &q.UpdatedAt, &q.CreatedBy, &q.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan queue: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Update actualiza una fila existente (name y company_id).
func (r *QueueRepo) Update(ctx context.Context, queue *entity.Queue) error {
	query := `
		UPDATE queues SET company_id = $2, name = $3, updated_at = $4, updated_by = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, queue.ID, queue.CompanyID, queue.Name, queue.UpdatedAt, queue.UpdatedBy)
	if err != nil {
		return fmt.Errorf("update queue: %w", err)
	}
	return nil
}

// Delete elimina una fila por ID (cascada a queue_entries vía FK).
func (r *QueueRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM queues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete queue: %w", err)
	}
	return nil
}

func (r *QueueRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Queue, error) {
	var q entity.Queue
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&q.ID, &q.CompanyID, &q.Name, &q.OrganizationID,
		&q.CreatedAt, &q.UpdatedAt, &q.CreatedBy, &q.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get queue: %w", err)
	}
	return &q, nil
}
