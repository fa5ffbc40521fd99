package repositories

import (
	"context"

	"github.com/ghuser/carbuilder/services/catalog/domain/models"
)

// CatalogRepository is the read-only interface over the four option catalogs.
// List methods return items in seed order. Find methods match the id exactly
// and return domain.ErrCatalogItemNotFound when no option has it.
type CatalogRepository interface {
	ListPaintColors(ctx context.Context) ([]models.PaintColor, error)
	ListInteriors(ctx context.Context) ([]models.Interior, error)
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
	ListWheels(ctx context.Context) ([]models.Wheels, error)

	FindPaintColor(ctx context.Context, id int) (models.PaintColor, error)
	FindInterior(ctx context.Context, id int) (models.Interior, error)
	FindTechnology(ctx context.Context, id int) (models.Technology, error)
	FindWheels(ctx context.Context, id int) (models.Wheels, error)
}
