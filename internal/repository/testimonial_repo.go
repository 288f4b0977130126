package repository

import (
	"context"
	"sync"

	"nainaland/internal/model"
	"nainaland/internal/store"
)

// TestimonialRepository defines operations for testimonial data
type TestimonialRepository interface {
	Create(ctx context.Context, req model.CreateTestimonialRequest) (*model.Testimonial, error)
	FindByID(ctx context.Context, id int) (*model.Testimonial, error)
	FindAll(ctx context.Context) ([]model.Testimonial, error)
	Update(ctx context.Context, id int, req model.UpdateTestimonialRequest) (*model.Testimonial, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type testimonialRepository struct {
	mu    sync.RWMutex
	table *store.Table[model.Testimonial]
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(table *store.Table[model.Testimonial]) TestimonialRepository {
	return &testimonialRepository{table: table}
}

func (r *testimonialRepository) Create(ctx context.Context, req model.CreateTestimonialRequest) (*model.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.NewTestimonial(r.table.NextID(), req)
	r.table.Set(t.ID, t)
	out := t.Clone()
	return &out, nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id int) (*model.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	out := t.Clone()
	return &out, nil
}

func (r *testimonialRepository) FindAll(ctx context.Context) ([]model.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	testimonials := []model.Testimonial{}
	for _, t := range r.table.Values() {
		testimonials = append(testimonials, t.Clone())
	}
	return testimonials, nil
}

func (r *testimonialRepository) Update(ctx context.Context, id int, req model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	updated := existing.Clone()
	updated.Apply(req)
	updated.ID = existing.ID
	r.table.Set(id, updated)

	out := updated.Clone()
	return &out, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.table.Delete(id), nil
}
