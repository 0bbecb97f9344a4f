package usecase

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain/authz"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// StatsUseCase estadísticas de espera por fila. Lectura pura: sin gate de
// capacidad, solo el scope de organización del principal.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso de estadísticas.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// QueueStats devuelve conteos y promedio de espera por cada fila visible.
func (uc *StatsUseCase) QueueStats(ctx context.Context, p authz.Principal) (*dto.QueueStatsListResponse, error) {
	rows, err := uc.repo.QueueStatsForOrg(ctx, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QueueStatsResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.QueueStatsResponse{
			QueueID:        r.QueueID,
			QueueName:      r.QueueName,
			CompanyName:    r.CompanyName,
			TotalEntries:   r.TotalEntries,
			WaitingEntries: r.WaitingEntries,
			AvgWaitSeconds: r.AvgWaitSeconds,
		})
	}
	return &dto.QueueStatsListResponse{Items: items}, nil
}
