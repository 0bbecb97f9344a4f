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

// QueueUseCase reglas de negocio y autorización para filas de espera.
// El padre declarable es Company: crear bajo una empresa ajena se niega con
// 403 si existe y 404 si no; mover una fila propia a una empresa ajena o
// inexistente se niega con 403 (ver internal/domain/authz).
type QueueUseCase struct {
	repo      repository.QueueRepository
	companies repository.CompanyRepository
}

// NewQueueUseCase construye el caso de uso con sus puertos.
func NewQueueUseCase(repo repository.QueueRepository, companies repository.CompanyRepository) *QueueUseCase {
	return &QueueUseCase{repo: repo, companies: companies}
}

// Create crea una fila bajo la empresa declarada. Requiere add_queue.
func (uc *QueueUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateQueueRequest) (*dto.QueueResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionAdd, authz.ResourceQueue)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || in.Company == "" {
		return nil, domain.ErrValidation
	}
	parent, err := uc.companies.GetByID(ctx, in.Company)
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
	queue := &entity.Queue{
		ID:             uuid.New().String(),
		CompanyID:      parent.ID,
		Name:           in.Name,
		OrganizationID: parent.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      p.Username,
		UpdatedBy:      p.Username,
	}
	if err := uc.repo.Create(ctx, queue); err != nil {
		return nil, err
	}
	return entityToQueueResponse(queue), nil
}

// GetByID obtiene una fila visible para el principal (ajena ≡ inexistente).
func (uc *QueueUseCase) GetByID(ctx context.Context, p authz.Principal, id string) (*dto.QueueResponse, error) {
	queue, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		return nil, domain.ErrNotFound
	}
	return entityToQueueResponse(queue), nil
}

// List lista filas de la organización del principal; company_id se aplica
// encima del scope.
func (uc *QueueUseCase) List(ctx context.Context, p authz.Principal, filter repository.QueueFilter, limit, offset int) (*dto.QueueListResponse, error) {
	list, err := uc.repo.ListForOrg(ctx, p.OrganizationID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QueueResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *entityToQueueResponse(q))
	}
	return &dto.QueueListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización completa (name y company requeridos). Requiere
// change_queue; el nuevo padre pasa por la re-validación de pertenencia.
func (uc *QueueUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateQueueRequest) (*dto.QueueResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceQueue)); err != nil {
		return nil, err
	}
	queue, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" || in.Company == "" {
		return nil, domain.ErrValidation
	}
	if err := uc.checkParentForUpdate(ctx, p, in.Company); err != nil {
		return nil, err
	}
	queue.Name = in.Name
	queue.CompanyID = in.Company
	queue.UpdatedAt = time.Now()
	queue.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, queue); err != nil {
		return nil, err
	}
	return entityToQueueResponse(queue), nil
}

// Patch actualización parcial. Si el payload declara company, corre exactamente
// la misma re-validación de padre que el PUT.
func (uc *QueueUseCase) Patch(ctx context.Context, p authz.Principal, id string, in dto.PatchQueueRequest) (*dto.QueueResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceQueue)); err != nil {
		return nil, err
	}
	queue, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		queue.Name = *in.Name
	}
	if in.Company != nil {
		if err := uc.checkParentForUpdate(ctx, p, *in.Company); err != nil {
			return nil, err
		}
		queue.CompanyID = *in.Company
	}
	queue.UpdatedAt = time.Now()
	queue.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, queue); err != nil {
		return nil, err
	}
	return entityToQueueResponse(queue), nil
}

// Delete requiere delete_queue; objetivo ajeno o inexistente → ErrNotFound.
func (uc *QueueUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionDelete, authz.ResourceQueue)); err != nil {
		return err
	}
	queue, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return err
	}
	if queue == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, queue.ID)
}

func (uc *QueueUseCase) checkParentForUpdate(ctx context.Context, p authz.Principal, companyID string) error {
	parent, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	var parentOrg string
	if parent != nil {
		parentOrg = parent.OrganizationID
	}
	return authz.RequireParentForUpdate(p, parent != nil, parentOrg)
}

func entityToQueueResponse(q *entity.Queue) *dto.QueueResponse {
	if q == nil {
		return nil
	}
	return &dto.QueueResponse{
		ID:        q.ID,
		Name:      q.Name,
		Company:   q.CompanyID,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		CreatedBy: q.CreatedBy,
		UpdatedBy: q.UpdatedBy,
	}
}
