package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que QueueEntryRepo implementa repository.QueueEntryRepository.
var _ repository.QueueEntryRepository = (*QueueEntryRepo)(nil)

// QueueEntryRepo implementación del puerto QueueEntryRepository sobre PostgreSQL.
// Las lecturas hacen JOIN queue_entries → queues → companies: la organización
// dueña de un turno siempre se resuelve transitivamente.
type QueueEntryRepo struct {
	db Querier
}

// NewQueueEntryRepository construye el adaptador de persistencia para turnos.
func NewQueueEntryRepository(db Querier) *QueueEntryRepo {
	return &QueueEntryRepo{db: db}
}

const queueEntrySelect = `
	SELECT e.id, e.queue_id, e.description, e.start_waiting, e.end_waiting,
	       c.organization_id, e.created_at, e.updated_at, e.created_by, e.updated_by
	FROM queue_entries e
	JOIN queues q    ON q.id = e.queue_id
	JOIN companies c ON c.id = q.company_id`

// Create persiste un nuevo turno.
func (r *QueueEntryRepo) Create(ctx context.Context, entry *entity.QueueEntry) error {
	query := `
		INSERT INTO queue_entries (id, queue_id, description, start_waiting, end_waiting, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.QueueID, entry.Description, entry.StartWaiting, entry.EndWaiting,
		entry.CreatedAt, entry.UpdatedAt, entry.CreatedBy, entry.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert queue entry: %w", err)
	}
	return nil
}

// GetByIDForOrg obtiene un turno visible para la organización (ajeno ≡ nil).
func (r *QueueEntryRepo) GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.QueueEntry, error) {
	query := queueEntrySelect + ` WHERE e.id = $1 AND c.organization_id = $2`
	var e entity.QueueEntry
	err := r.db.QueryRow(ctx, query, id, organizationID).Scan(
		&e.ID, &e.QueueID, &e.Description, &e.StartWaiting, &e.EndWaiting,
		&e.OrganizationID, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get queue entry: %w", err)
	}
	return &e, nil
}

// ListForOrg devuelve turnos de la organización ordenados por start_waiting.
// Los filtros (queue_id, date, waiting_end_is_null) se suman al scope, nunca
// lo reemplazan.
func (r *QueueEntryRepo) ListForOrg(ctx context.Context, organizationID string, filter repository.QueueEntryFilter, limit, offset int) ([]*entity.QueueEntry, error) {
	query := queueEntrySelect + ` WHERE c.organization_id = $1`
	args := []any{organizationID}
	if filter.QueueID != "" {
		args = append(args, filter.QueueID)
		query += fmt.Sprintf(` AND e.queue_id = $%d`, len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(` AND e.start_waiting::date = $%d::date`, len(args))
	}
	if filter.WaitingEndIsNull != nil {
		if *filter.WaitingEndIsNull {
			query += ` AND e.end_waiting IS NULL`
		} else {
			query += ` AND e.end_waiting IS NOT NULL`
		}
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY e.start_waiting LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list queue entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.QueueEntry
	for rows.Next() {
		var e entity.QueueEntry
		if err := rows.Scan(&e.ID, &e.QueueID, &e.Description, &e.StartWaiting, &e.EndWaiting,
			&e.OrganizationID, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan queue entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un turno existente. start_waiting nunca se toca.
func (r *QueueEntryRepo) Update(ctx context.Context, entry *entity.QueueEntry) error {
	query := `
		UPDATE queue_entries SET queue_id = $2, description = $3, end_waiting = $4, updated_at = $5, updated_by = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.QueueID, entry.Description, entry.EndWaiting, entry.UpdatedAt, entry.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update queue entry: %w", err)
	}
	return nil
}

// Delete elimina un turno por ID.
func (r *QueueEntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM queue_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete queue entry: %w", err)
	}
	return nil
}
