package service

import (
	"context"
	"fmt"

	"nainaland/internal/model"
	"nainaland/internal/repository"
)

// TestimonialService defines operations for testimonials
type TestimonialService interface {
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	GetTestimonial(ctx context.Context, id int) (*model.Testimonial, error)
	CreateTestimonial(ctx context.Context, req model.CreateTestimonialRequest) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int, req model.UpdateTestimonialRequest) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int) error
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	testimonials, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *testimonialService) GetTestimonial(ctx context.Context, id int) (*model.Testimonial, error) {
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find testimonial by ID: %w", err)
	}
	if testimonial == nil {
		return nil, ErrTestimonialNotFound
	}
	return testimonial, nil
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req model.CreateTestimonialRequest) (*model.Testimonial, error) {
	testimonial, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial in repo: %w", err)
	}
	return testimonial, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id int, req model.UpdateTestimonialRequest) (*model.Testimonial, error) {
	testimonial, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update testimonial in repo: %w", err)
	}
	if testimonial == nil {
		return nil, ErrTestimonialNotFound
	}
	return testimonial, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial in repo: %w", err)
	}
	if !deleted {
		return ErrTestimonialNotFound
	}
	return nil
}
