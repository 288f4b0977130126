package service

import (
	"context"
	"fmt"
	"log/slog"

	"nainaland/internal/model"
	"nainaland/internal/notifier"
	"nainaland/internal/repository"
)

// MessageService handles contact-form submissions and the admin inbox
type MessageService interface {
	SubmitMessage(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error)
	ListMessages(ctx context.Context) ([]model.Message, error)
	GetMessage(ctx context.Context, id int) (*model.Message, error)
	SetReadStatus(ctx context.Context, id int, isRead bool) (*model.Message, error)
	DeleteMessage(ctx context.Context, id int) error
}

type messageService struct {
	repo     repository.MessageRepository
	notifier notifier.Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository, n notifier.Notifier) MessageService {
	return &messageService{repo: repo, notifier: n}
}

// SubmitMessage stores the message and notifies the owner.
// A failed notification is logged; the message is kept either way.
func (s *messageService) SubmitMessage(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	msg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create message in repo: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, notifier.ContactSubject(*msg), notifier.ContactBody(*msg)); err != nil {
			slog.ErrorContext(ctx, "contact notification failed", "message_id", msg.ID, "error", err)
		}
	}
	return msg, nil
}

func (s *messageService) ListMessages(ctx context.Context) ([]model.Message, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) GetMessage(ctx context.Context, id int) (*model.Message, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find message by ID: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

func (s *messageService) SetReadStatus(ctx context.Context, id int, isRead bool) (*model.Message, error) {
	msg, err := s.repo.UpdateReadStatus(ctx, id, isRead)
	if err != nil {
		return nil, fmt.Errorf("failed to update message status in repo: %w", err)
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete message in repo: %w", err)
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}
