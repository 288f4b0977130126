package repository

import (
	"context"
	"sync"
	"time"

	"nainaland/internal/model"
	"nainaland/internal/store"
)

// PropertyRepository defines operations for property data
type PropertyRepository interface {
	Create(ctx context.Context, req model.CreatePropertyRequest) (*model.Property, error)
	FindByID(ctx context.Context, id int) (*model.Property, error)
	FindAll(ctx context.Context) ([]model.Property, error)
	FindByType(ctx context.Context, propertyType string) ([]model.Property, error)
	FindFeatured(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, id int, req model.UpdatePropertyRequest) (*model.Property, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type propertyRepository struct {
	mu    sync.RWMutex
	table *store.Table[model.Property]
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(table *store.Table[model.Property]) PropertyRepository {
	return &propertyRepository{table: table}
}

func (r *propertyRepository) Create(ctx context.Context, req model.CreatePropertyRequest) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := model.NewProperty(r.table.NextID(), req, time.Now())
	r.table.Set(p.ID, p)
	out := p.Clone()
	return &out, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id int) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	out := p.Clone()
	return &out, nil
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	return r.filter(func(model.Property) bool { return true }), nil
}

// FindByType matches propertyType exactly (case-sensitive)
func (r *propertyRepository) FindByType(ctx context.Context, propertyType string) ([]model.Property, error) {
	return r.filter(func(p model.Property) bool { return p.PropertyType == propertyType }), nil
}

func (r *propertyRepository) FindFeatured(ctx context.Context) ([]model.Property, error) {
	return r.filter(func(p model.Property) bool { return p.IsFeatured }), nil
}

// Update merges req over the stored property; id and createdAt are kept
func (r *propertyRepository) Update(ctx context.Context, id int, req model.UpdatePropertyRequest) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	updated := existing.Clone()
	updated.Apply(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	r.table.Set(id, updated)

	out := updated.Clone()
	return &out, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.table.Delete(id), nil
}

func (r *propertyRepository) filter(keep func(model.Property) bool) []model.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := []model.Property{}
	for _, p := range r.table.Values() {
		if keep(p) {
			properties = append(properties, p.Clone())
		}
	}
	return properties
}
