package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que StatsRepo implementa repository.StatsRepository.
var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para estadísticas de espera por fila.
type StatsRepo struct {
	db Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(db Querier) *StatsRepo {
	return &StatsRepo{db: db}
}

// QueueStatsForOrg agrega por fila: total de turnos, turnos aún esperando y
// promedio de espera (segundos) de los turnos completados. El promedio viene
// como NUMERIC y se escanea a decimal (codec registrado en el pool).
// Usa COALESCE para devolver cero en filas sin turnos completados.
func (r *StatsRepo) QueueStatsForOrg(ctx context.Context, organizationID string) ([]repository.QueueStatsResult, error) {
	const query = `
	SELECT
	    q.id                                                                         AS queue_id,
	    q.name                                                                       AS queue_name,
	    c.name                                                                       AS company_name,
	    COUNT(e.id)                                                                  AS total_entries,
	    COUNT(e.id) FILTER (WHERE e.end_waiting IS NULL)                             AS waiting_entries,
	    COALESCE(
	        AVG(EXTRACT(EPOCH FROM (e.end_waiting - e.start_waiting)))
	            FILTER (WHERE e.end_waiting IS NOT NULL),
	        0
	    )                                                                            AS avg_wait_seconds
	FROM queues q
	JOIN companies c ON c.id = q.company_id
	LEFT JOIN queue_entries e ON e.queue_id = q.id
	WHERE c.organization_id = $1
	GROUP BY q.id, q.name, c.name
	ORDER BY c.name, q.name`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("stats.QueueStatsForOrg: %w", err)
	}
	defer rows.Close()

	var results []repository.QueueStatsResult
	for rows.Next() {
		var row repository.QueueStatsResult
		if err := rows.Scan(
			&row.QueueID,
			&row.QueueName,
			&row.CompanyName,
			&row.TotalEntries,
			&row.WaitingEntries,
			&row.AvgWaitSeconds,
		); err != nil {
			return nil, fmt.Errorf("stats.QueueStatsForOrg scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
