// Package projectstest provides an in-memory domain.Repository for tests.
package projectstest

import (
	"context"
	"sync"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

type Repo struct {
	mu    sync.Mutex
	order []string
	items map[string]domain.Project

	// Err, when set, is returned by every call.
	Err error
	// InsertErr, when set, is returned by Insert for the matching id.
	InsertErr map[string]error
}

var _ domain.Repository = (*Repo)(nil)

func NewRepo(seed ...domain.Project) *Repo {
	r := &Repo{items: map[string]domain.Project{}}
	for _, p := range seed {
		r.order = append(r.order, p.ID)
		r.items[p.ID] = p
	}
	return r
}

func (r *Repo) FindAll(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *Repo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (r *Repo) Insert(ctx context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if err := r.InsertErr[p.ID]; err != nil {
		return err
	}
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrProjectExists
	}
	r.order = append(r.order, p.ID)
	r.items[p.ID] = *p
	return nil
}

func (r *Repo) Update(ctx context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports how many projects are stored.
func (r *Repo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
