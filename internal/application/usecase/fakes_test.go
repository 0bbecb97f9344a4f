package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Turnos-api/internal/domain/authz"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Respetan el contrato de los
// repositorios reales: los métodos *ForOrg devuelven nil para filas ajenas y
// las lecturas de Queue/QueueEntry resuelven OrganizationID desde el padre.
// ──────────────────────────────────────────────────────────────────────────────

const (
	orgA = "00000000-0000-0000-0000-00000000000a"
	orgB = "00000000-0000-0000-0000-00000000000b"
)

func principalDe(org string, tokens ...string) authz.Principal {
	return authz.NewPrincipal(uuid.New().String(), "tester", org, tokens)
}

// todosLosTokens otorga la grilla completa; útil cuando el test no ejercita el
// gate de capacidad sino la visibilidad.
func todosLosTokens() []string {
	caps := authz.All()
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, c.Token())
	}
	return out
}

type fakeCompanyRepo struct {
	items []*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range f.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByIDForOrg(_ context.Context, id, organizationID string) (*entity.Company, error) {
	for _, c := range f.items {
		if c.ID == id && c.OrganizationID == organizationID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) ListForOrg(_ context.Context, organizationID string, filter repository.CompanyFilter, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.items {
		if c.OrganizationID != organizationID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return paginar(out, limit, offset), nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	for i, existing := range f.items {
		if existing.ID == c.ID {
			cp := *c
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	for i, c := range f.items {
		if c.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeQueueRepo struct {
	companies *fakeCompanyRepo
	items     []*entity.Queue
}

// resolverOrg emula el JOIN queues → companies de las lecturas reales.
func (f *fakeQueueRepo) resolverOrg(q *entity.Queue) *entity.Queue {
	cp := *q
	cp.OrganizationID = ""
	for _, c := range f.companies.items {
		if c.ID == cp.CompanyID {
			cp.OrganizationID = c.OrganizationID
			break
		}
	}
	return &cp
}

func (f *fakeQueueRepo) Create(_ context.Context, q *entity.Queue) error {
	cp := *q
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeQueueRepo) GetByID(_ context.Context, id string) (*entity.Queue, error) {
	for _, q := range f.items {
		if q.ID == id {
			return f.resolverOrg(q), nil
		}
	}
	return nil, nil
}

func (f *fakeQueueRepo) GetByIDForOrg(ctx context.Context, id, organizationID string) (*entity.Queue, error) {
	q, err := f.GetByID(ctx, id)
	if err != nil || q == nil || q.OrganizationID != organizationID {
		return nil, err
	}
	return q, nil
}

func (f *fakeQueueRepo) ListForOrg(_ context.Context, organizationID string, filter repository.QueueFilter, limit, offset int) ([]*entity.Queue, error) {
	var out []*entity.Queue
	for _, q := range f.items {
		resolved := f.resolverOrg(q)
		if resolved.OrganizationID != organizationID {
			continue
		}
		if filter.CompanyID != "" && resolved.CompanyID != filter.CompanyID {
			continue
		}
		out = append(out, resolved)
	}
	return paginar(out, limit, offset), nil
}

func (f *fakeQueueRepo) Update(_ context.Context, q *entity.Queue) error {
	for i, existing := range f.items {
		if existing.ID == q.ID {
			cp := *q
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeQueueRepo) Delete(_ context.Context, id string) error {
	for i, q := range f.items {
		if q.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeQueueEntryRepo struct {
	queues *fakeQueueRepo
	items  []*entity.QueueEntry
}

// resolverOrg emula el JOIN queue_entries → queues → companies.
func (f *fakeQueueEntryRepo) resolverOrg(e *entity.QueueEntry) *entity.QueueEntry {
	cp := *e
	cp.OrganizationID = ""
	for _, q := range f.queues.items {
		if q.ID == cp.QueueID {
			cp.OrganizationID = f.queues.resolverOrg(q).OrganizationID
			break
		}
	}
	return &cp
}

func (f *fakeQueueEntryRepo) Create(_ context.Context, e *entity.QueueEntry) error {
	cp := *e
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeQueueEntryRepo) GetByIDForOrg(_ context.Context, id, organizationID string) (*entity.QueueEntry, error) {
	for _, e := range f.items {
		if e.ID != id {
			continue
		}
		resolved := f.resolverOrg(e)
		if resolved.OrganizationID == organizationID {
			return resolved, nil
		}
		return nil, nil
	}
	return nil, nil
}

func (f *fakeQueueEntryRepo) ListForOrg(_ context.Context, organizationID string, filter repository.QueueEntryFilter, limit, offset int) ([]*entity.QueueEntry, error) {
	var out []*entity.QueueEntry
	for _, e := range f.items {
		resolved := f.resolverOrg(e)
		if resolved.OrganizationID != organizationID {
			continue
		}
		if filter.QueueID != "" && resolved.QueueID != filter.QueueID {
			continue
		}
		if filter.Date != nil {
			y1, m1, d1 := resolved.StartWaiting.Date()
			y2, m2, d2 := filter.Date.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		if filter.WaitingEndIsNull != nil && (resolved.EndWaiting == nil) != *filter.WaitingEndIsNull {
			continue
		}
		out = append(out, resolved)
	}
	return paginar(out, limit, offset), nil
}

func (f *fakeQueueEntryRepo) Update(_ context.Context, e *entity.QueueEntry) error {
	for i, existing := range f.items {
		if existing.ID == e.ID {
			cp := *e
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeQueueEntryRepo) Delete(_ context.Context, id string) error {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func paginar[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// ──────────────────────────────────────────────────────────────────────────────
// Seeds
// ──────────────────────────────────────────────────────────────────────────────

func seedCompany(repo *fakeCompanyRepo, org, name string) *entity.Company {
	now := time.Now()
	c := &entity.Company{
		ID:             uuid.New().String(),
		OrganizationID: org,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	repo.items = append(repo.items, c)
	return c
}

func seedQueue(repo *fakeQueueRepo, company *entity.Company, name string) *entity.Queue {
	now := time.Now()
	q := &entity.Queue{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.items = append(repo.items, q)
	return q
}

func seedEntry(repo *fakeQueueEntryRepo, queue *entity.Queue, description string, start time.Time, end *time.Time) *entity.QueueEntry {
	e := &entity.QueueEntry{
		ID:           uuid.New().String(),
		QueueID:      queue.ID,
		Description:  description,
		StartWaiting: start,
		EndWaiting:   end,
		CreatedAt:    start,
		UpdatedAt:    start,
	}
	repo.items = append(repo.items, e)
	return e
}
