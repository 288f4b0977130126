package repository

import (
	"context"
	"sync"
	"time"

	"nainaland/internal/model"
	"nainaland/internal/store"
)

// BlogPostRepository defines operations for blog post data
type BlogPostRepository interface {
	Create(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error)
	FindByID(ctx context.Context, id int) (*model.BlogPost, error)
	FindAll(ctx context.Context) ([]model.BlogPost, error)
	Update(ctx context.Context, id int, req model.UpdateBlogPostRequest) (*model.BlogPost, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type blogPostRepository struct {
	mu    sync.RWMutex
	table *store.Table[model.BlogPost]
}

// NewBlogPostRepository creates a new BlogPostRepository
func NewBlogPostRepository(table *store.Table[model.BlogPost]) BlogPostRepository {
	return &blogPostRepository{table: table}
}

func (r *blogPostRepository) Create(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := model.NewBlogPost(r.table.NextID(), req, time.Now())
	r.table.Set(post.ID, post)
	return &post, nil
}

func (r *blogPostRepository) FindByID(ctx context.Context, id int) (*model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (r *blogPostRepository) FindAll(ctx context.Context) ([]model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.table.Values(), nil
}

func (r *blogPostRepository) Update(ctx context.Context, id int, req model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	updated := existing
	updated.Apply(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	r.table.Set(id, updated)
	return &updated, nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.table.Delete(id), nil
}
