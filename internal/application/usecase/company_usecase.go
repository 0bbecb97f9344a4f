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

// CompanyUseCase aplica las reglas de negocio y autorización para empresas.
// Company no tiene padre declarable: la organización se fija desde el principal
// al crear y nunca es editable.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa dentro de la organización del principal.
// Requiere la capacidad add_company.
func (uc *CompanyUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionAdd, authz.ResourceCompany)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		OrganizationID: p.OrganizationID,
		Name:           in.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      p.Username,
		UpdatedBy:      p.Username,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa visible para el principal. Una empresa de otra
// organización produce ErrNotFound, igual que un ID inexistente.
func (uc *CompanyUseCase) GetByID(ctx context.Context, p authz.Principal, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas de la organización del principal con paginación.
// El filtro search se aplica encima del scope, nunca en su lugar.
func (uc *CompanyUseCase) List(ctx context.Context, p authz.Principal, filter repository.CompanyFilter, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListForOrg(ctx, p.OrganizationID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización completa. Requiere change_company; el objetivo debe ser
// visible para el principal (si no, ErrNotFound).
func (uc *CompanyUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceCompany)); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	company.Name = in.Name
	company.UpdatedAt = time.Now()
	company.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Patch actualización parcial; mismas reglas que Update.
func (uc *CompanyUseCase) Patch(ctx context.Context, p authz.Principal, id string, in dto.PatchCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionChange, authz.ResourceCompany)); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		company.Name = *in.Name
	}
	company.UpdatedAt = time.Now()
	company.UpdatedBy = p.Username
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina una empresa (cascada sobre queues y entries a nivel DB).
// Requiere delete_company; objetivo ajeno o inexistente → ErrNotFound.
func (uc *CompanyUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if err := authz.RequireCapability(p, authz.Cap(authz.ActionDelete, authz.ResourceCompany)); err != nil {
		return err
	}
	company, err := uc.repo.GetByIDForOrg(ctx, id, p.OrganizationID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, company.ID)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
	}
}
