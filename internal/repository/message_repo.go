package repository

import (
	"context"
	"sync"
	"time"

	"nainaland/internal/model"
	"nainaland/internal/store"
)

// MessageRepository defines operations for contact messages.
// Messages are only ever changed through UpdateReadStatus.
type MessageRepository interface {
	Create(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error)
	FindByID(ctx context.Context, id int) (*model.Message, error)
	FindAll(ctx context.Context) ([]model.Message, error)
	UpdateReadStatus(ctx context.Context, id int, isRead bool) (*model.Message, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type messageRepository struct {
	mu    sync.RWMutex
	table *store.Table[model.Message]
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(table *store.Table[model.Message]) MessageRepository {
	return &messageRepository{table: table}
}

func (r *messageRepository) Create(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := model.NewMessage(r.table.NextID(), req, time.Now())
	r.table.Set(msg.ID, msg)
	return &msg, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id int) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	return &msg, nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.table.Values(), nil
}

func (r *messageRepository) UpdateReadStatus(ctx context.Context, id int, isRead bool) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.table.Get(id)
	if !ok {
		return nil, nil
	}
	msg.IsRead = isRead
	r.table.Set(id, msg)
	return &msg, nil
}

func (r *messageRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.table.Delete(id), nil
}
