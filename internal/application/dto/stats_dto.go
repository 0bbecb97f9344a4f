package dto

import "github.com/shopspring/decimal"

// QueueStatsResponse estadísticas de una fila.
type QueueStatsResponse struct {
	QueueID        string          `json:"queue_id"`
	QueueName      string          `json:"queue_name"`
	CompanyName    string          `json:"company_name"`
	TotalEntries   int64           `json:"total_entries"`
	WaitingEntries int64           `json:"waiting_entries"`
	AvgWaitSeconds decimal.Decimal `json:"avg_wait_seconds"`
}

// QueueStatsListResponse estadísticas de todas las filas visibles.
type QueueStatsListResponse struct {
	Items []QueueStatsResponse `json:"items"`
}
