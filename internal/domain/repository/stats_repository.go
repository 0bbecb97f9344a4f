package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// QueueStatsResult fila agregada de estadísticas por queue.
type QueueStatsResult struct {
	QueueID        string
	QueueName      string
	CompanyName    string
	TotalEntries   int64
	WaitingEntries int64
	// AvgWaitSeconds promedio de (end_waiting - start_waiting) de los turnos
	// completados, en segundos. NUMERIC en SQL → decimal para no perder precisión.
	AvgWaitSeconds decimal.Decimal
}

// StatsRepository consultas de solo lectura para estadísticas de espera.
// Siempre acotadas a una organización, como cualquier otra lectura.
type StatsRepository interface {
	QueueStatsForOrg(ctx context.Context, organizationID string) ([]QueueStatsResult, error)
}
