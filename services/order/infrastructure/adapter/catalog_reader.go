// Package adapter connects the order context to other bounded contexts.
package adapter

import (
	"context"

	catalogsvcs "github.com/ghuser/carbuilder/services/catalog/application/services"
	catalogmodels "github.com/ghuser/carbuilder/services/catalog/domain/models"
	ordersvcs "github.com/ghuser/carbuilder/services/order/domain/services"
)

var _ ordersvcs.CatalogReader = (*CatalogReader)(nil)

// CatalogReader exposes the catalog application service through the order
// context's CatalogReader port.
type CatalogReader struct {
	catalog *catalogsvcs.CatalogService
}

func NewCatalogReader(catalog *catalogsvcs.CatalogService) *CatalogReader {
	return &CatalogReader{catalog: catalog}
}

func (c *CatalogReader) PaintColor(ctx context.Context, id int) (catalogmodels.PaintColor, error) {
	return c.catalog.PaintColor(ctx, id)
}

func (c *CatalogReader) Interior(ctx context.Context, id int) (catalogmodels.Interior, error) {
	return c.catalog.Interior(ctx, id)
}

func (c *CatalogReader) Technology(ctx context.Context, id int) (catalogmodels.Technology, error) {
	return c.catalog.Technology(ctx, id)
}

func (c *CatalogReader) Wheels(ctx context.Context, id int) (catalogmodels.Wheels, error) {
	return c.catalog.WheelsByID(ctx, id)
}
