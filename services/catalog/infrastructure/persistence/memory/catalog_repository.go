// Package memory implements the catalog repository over compiled-in seed data.
package memory

import (
	"context"
	"fmt"
	"slices"

	catalogdomain "github.com/ghuser/carbuilder/services/catalog/domain"
	"github.com/ghuser/carbuilder/services/catalog/domain/models"
)

// CatalogRepository implements repositories.CatalogRepository. The catalogs are
// fixed at construction; callers receive copies, so no caller can mutate them.
type CatalogRepository struct {
	paintColors  []models.PaintColor
	interiors    []models.Interior
	technologies []models.Technology
	wheels       []models.Wheels
}

// NewCatalogRepository returns a repository seeded with the standard options.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		paintColors:  seedPaintColors(),
		interiors:    seedInteriors(),
		technologies: seedTechnologies(),
		wheels:       seedWheels(),
	}
}

func (r *CatalogRepository) ListPaintColors(_ context.Context) ([]models.PaintColor, error) {
	return slices.Clone(r.paintColors), nil
}

func (r *CatalogRepository) ListInteriors(_ context.Context) ([]models.Interior, error) {
	return slices.Clone(r.interiors), nil
}

func (r *CatalogRepository) ListTechnologies(_ context.Context) ([]models.Technology, error) {
	return slices.Clone(r.technologies), nil
}

func (r *CatalogRepository) ListWheels(_ context.Context) ([]models.Wheels, error) {
	return slices.Clone(r.wheels), nil
}

func (r *CatalogRepository) FindPaintColor(_ context.Context, id int) (models.PaintColor, error) {
	return find(r.paintColors, models.KindPaintColor, id, func(p models.PaintColor) int { return p.ID })
}

func (r *CatalogRepository) FindInterior(_ context.Context, id int) (models.Interior, error) {
	return find(r.interiors, models.KindInterior, id, func(i models.Interior) int { return i.ID })
}

func (r *CatalogRepository) FindTechnology(_ context.Context, id int) (models.Technology, error) {
	return find(r.technologies, models.KindTechnology, id, func(t models.Technology) int { return t.ID })
}

func (r *CatalogRepository) FindWheels(_ context.Context, id int) (models.Wheels, error) {
	return find(r.wheels, models.KindWheels, id, func(w models.Wheels) int { return w.ID })
}

func find[T any](items []T, kind models.Kind, id int, idOf func(T) int) (T, error) {
	i := slices.IndexFunc(items, func(it T) bool { return idOf(it) == id })
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", kind, id, catalogdomain.ErrCatalogItemNotFound)
	}
	return items[i], nil
}
