package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/authz"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// QueueEntryUseCase reglas de negocio y autorización para turnos. El padre
// declarable es Queue; su organización dueña se resuelve transitivamente
// (queue → company → organization) en la lectura del padre.
type QueueEntryUseCase struct {
	repo   repository.QueueEntryRepository
	queues repository.QueueRepository
}

// NewQueueEntryUseCase construye el caso de uso con sus puertos.
func NewQueueEntryUseCase(repo repository.QueueEntryRepository, queues repository.QueueRepository) *QueueEntryUseCase {
	return &QueueEntryUseCase{repo: repo, queues: queues}
}

// Create crea un turno bajo la fila declarada. Requiere add_queueentry.
// StartWaiting se fija aquí y no vuelve a editarse.
func (uc *QueueEntryUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateQueueEntryRequest) (*dto.QueueEntryResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionAdd, authz.ResourceQueueEntry)); err != nil {
		return nil, err
	}
	if in.Queue == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrValidation
	}
	parent, err := uc.queues.GetByID(ctx, in.Queue)
	if err != nil {
		return nil, err
	}
	var parentOrg string
	if parent != nil {
		parentOrg = parent.OrganizationID
	}
	if err := authz.RequireParentForCreate(p, parent != nil, parentOrg); err != nil {
		return nil, err
	}
	now := time.Now()
	entry := &entity.QueueEntry{
		ID:             uuid.New().String(),
		QueueID:        parent.ID,
		Description:    in.Description,
		StartWaiting:   now,
		OrganizationID: parent.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      p.Username,
		UpdatedBy:      p.Username,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entityToQueueEntryResponse(entry), nil
}

// GetByID obtiene un turno visible para el principal (ajeno ≡ inexistente).
func (uc *QueueEntryUseCase) GetByID(ctx context.Context, p authz.Principal, id string) (*dto.QueueEntryResponse, error) {
	entry, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entityToQueueEntryResponse(entry), nil
}

// List lista turnos de la organización del principal; queue_id, date y
// waiting_end_is_null se aplican encima del scope.
func (uc *QueueEntryUseCase) List(ctx context.Context, p authz.Principal, filter repository.QueueEntryFilter, limit, offset int) (*dto.QueueEntryListResponse, error) {
	list, err := uc.repo.ListForOrg(ctx, p.OrganizationID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QueueEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToQueueEntryResponse(e))
	}
	return &dto.QueueEntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización completa (queue y description requeridos). Requiere
// change_queueentry; la nueva fila padre pasa por la re-validación.
// EndWaiting se escribe tal cual llega (nil vuelve a "esperando").
func (uc *QueueEntryUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateQueueEntryRequest) (*dto.QueueEntryResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceQueueEntry)); err != nil {
		return nil, err
	}
	entry, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Queue == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrValidation
	}
	if err := uc.checkParentForUpdate(ctx, p, in.Queue); err != nil {
		return nil, err
	}
	entry.QueueID = in.Queue
	entry.Description = in.Description
	entry.EndWaiting = in.EndWaiting
	entry.UpdatedAt = time.Now()
	entry.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entityToQueueEntryResponse(entry), nil
}

// Patch actualización parcial. Si declara queue, corre exactamente la misma
// re-validación de padre que el PUT.
func (uc *QueueEntryUseCase) Patch(ctx context.Context, p authz.Principal, id string, in dto.PatchQueueEntryRequest) (*dto.QueueEntryResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceQueueEntry)); err != nil {
		return nil, err
	}
	entry, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Queue != nil {
		if err := uc.checkParentForUpdate(ctx, p, *in.Queue); err != nil {
			return nil, err
		}
		entry.QueueID = *in.Queue
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.ErrValidation
		}
		entry.Description = *in.Description
	}
	if in.EndWaiting != nil {
		entry.EndWaiting = in.EndWaiting
	}
	entry.UpdatedAt = time.Now()
	entry.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entityToQueueEntryResponse(entry), nil
}

// Delete requiere delete_queueentry; objetivo ajeno o inexistente → ErrNotFound.
func (uc *QueueEntryUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionDelete, authz.ResourceQueueEntry)); err != nil {
		return err
	}
	entry, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, entry.ID)
}

func (uc *QueueEntryUseCase) checkParentForUpdate(ctx context.Context, p authz.Principal, queueID string) error {
	parent, err := uc.queues.GetByID(ctx, queueID)
	if err != nil {
		return err
	}
	var parentOrg string
	if parent != nil {
		parentOrg = parent.OrganizationID
	}
	return authz.RequireParentForUpdate(p, parent != nil, parentOrg)
}

func entityToQueueEntryResponse(e *entity.QueueEntry) *dto.QueueEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.QueueEntryResponse{
		ID:           e.ID,
		Queue:        e.QueueID,
		Description:  e.Description,
		StartWaiting: e.StartWaiting,
		EndWaiting:   e.EndWaiting,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		CreatedBy:    e.CreatedBy,
		UpdatedBy:    e.UpdatedBy,
	}
}
