package service

import (
	"context"
	"fmt"

	"nainaland/internal/model"
	"nainaland/internal/repository"
)

// BlogService defines operations for blog posts
type BlogService interface {
	ListPosts(ctx context.Context) ([]model.BlogPost, error)
	GetPost(ctx context.Context, id int) (*model.BlogPost, error)
	CreatePost(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error)
	UpdatePost(ctx context.Context, id int, req model.UpdateBlogPostRequest) (*model.BlogPost, error)
	DeletePost(ctx context.Context, id int) error
}

type blogService struct {
	repo repository.BlogPostRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(repo repository.BlogPostRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, id int) (*model.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog post by ID: %w", err)
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

func (s *blogService) CreatePost(ctx context.Context, req model.CreateBlogPostRequest) (*model.BlogPost, error) {
	post, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post in repo: %w", err)
	}
	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id int, req model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	post, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post in repo: %w", err)
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post in repo: %w", err)
	}
	if !deleted {
		return ErrBlogPostNotFound
	}
	return nil
}
