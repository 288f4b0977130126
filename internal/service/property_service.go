package service

import (
	"context"
	"fmt"

	"nainaland/internal/model"
	"nainaland/internal/repository"
)

// PropertyFilters selects the read path for ListProperties.
// Type takes precedence over FeaturedOnly.
type PropertyFilters struct {
	Type         string
	FeaturedOnly bool
}

// PropertyService defines catalog operations for properties
type PropertyService interface {
	ListProperties(ctx context.Context, filters PropertyFilters) ([]model.Property, error)
	GetProperty(ctx context.Context, id int) (*model.Property, error)
	CreateProperty(ctx context.Context, req model.CreatePropertyRequest) (*model.Property, error)
	UpdateProperty(ctx context.Context, id int, req model.UpdatePropertyRequest) (*model.Property, error)
	DeleteProperty(ctx context.Context, id int) error
}

type propertyService struct {
	repo repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) ListProperties(ctx context.Context, filters PropertyFilters) ([]model.Property, error) {
	var (
		properties []model.Property
		err        error
	)
	switch {
	case filters.Type != "":
		properties, err = s.repo.FindByType(ctx, filters.Type)
	case filters.FeaturedOnly:
		properties, err = s.repo.FindFeatured(ctx)
	default:
		properties, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id int) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find property by ID: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, req model.CreatePropertyRequest) (*model.Property, error) {
	property, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create property in repo: %w", err)
	}
	return property, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id int, req model.UpdatePropertyRequest) (*model.Property, error) {
	property, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update property in repo: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete property in repo: %w", err)
	}
	if !deleted {
		return ErrPropertyNotFound
	}
	return nil
}
