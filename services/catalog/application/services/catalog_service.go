package services

import (
	"context"
	"fmt"

	"github.com/ghuser/carbuilder/services/catalog/domain/models"
	"github.com/ghuser/carbuilder/services/catalog/domain/repositories"
)

// CatalogService serves the read-only option catalogs.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService returns a CatalogService backed by the given repository.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) PaintColors(ctx context.Context) ([]models.PaintColor, error) {
	items, err := s.repo.ListPaintColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paint colors: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Interiors(ctx context.Context) ([]models.Interior, error) {
	items, err := s.repo.ListInteriors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interiors: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Technologies(ctx context.Context) ([]models.Technology, error) {
	items, err := s.repo.ListTechnologies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Wheels(ctx context.Context) ([]models.Wheels, error) {
	items, err := s.repo.ListWheels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wheels: %w", err)
	}
	return items, nil
}

// PaintColor returns the paint option with the given id or ErrCatalogItemNotFound.
func (s *CatalogService) PaintColor(ctx context.Context, id int) (models.PaintColor, error) {
	return s.repo.FindPaintColor(ctx, id)
}

// Interior returns the interior option with the given id or ErrCatalogItemNotFound.
func (s *CatalogService) Interior(ctx context.Context, id int) (models.Interior, error) {
	return s.repo.FindInterior(ctx, id)
}

// Technology returns the technology option with the given id or ErrCatalogItemNotFound.
func (s *CatalogService) Technology(ctx context.Context, id int) (models.Technology, error) {
	return s.repo.FindTechnology(ctx, id)
}

// WheelsByID returns the wheel option with the given id or ErrCatalogItemNotFound.
func (s *CatalogService) WheelsByID(ctx context.Context, id int) (models.Wheels, error) {
	return s.repo.FindWheels(ctx, id)
}
