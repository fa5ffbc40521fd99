// Package services contains domain services for the order bounded context.
package services

import (
	"context"
	"errors"
	"fmt"

	catalogdomain "github.com/ghuser/carbuilder/services/catalog/domain"
	catalogmodels "github.com/ghuser/carbuilder/services/catalog/domain/models"
	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
	"github.com/ghuser/carbuilder/services/order/domain/models"
)

// CatalogReader is the order context's read port into the catalogs.
// Implementations return catalog ErrCatalogItemNotFound for unknown ids.
type CatalogReader interface {
	PaintColor(ctx context.Context, id int) (catalogmodels.PaintColor, error)
	Interior(ctx context.Context, id int) (catalogmodels.Interior, error)
	Technology(ctx context.Context, id int) (catalogmodels.Technology, error)
	Wheels(ctx context.Context, id int) (catalogmodels.Wheels, error)
}

// Assembler resolves an order's foreign keys into full catalog options.
type Assembler struct {
	catalog CatalogReader
}

// NewAssembler returns an Assembler reading from catalog.
func NewAssembler(catalog CatalogReader) *Assembler {
	return &Assembler{catalog: catalog}
}

// Assemble performs the four lookups for o. Every unresolvable key is reported
// as a *ReferenceError, joined together; any other lookup failure is returned
// on its own.
func (a *Assembler) Assemble(ctx context.Context, o models.Order) (models.OrderDetails, error) {
	var refs []error
	var failure error
	resolve := func(field string, id int, err error) {
		switch {
		case err == nil:
		case errors.Is(err, catalogdomain.ErrCatalogItemNotFound):
			refs = append(refs, &orderdomain.ReferenceError{Field: field, ID: id})
		case failure == nil:
			failure = fmt.Errorf("resolve %s: %w", field, err)
		}
	}

	paint, err := a.catalog.PaintColor(ctx, o.PaintID)
	resolve(orderdomain.FieldPaintID, o.PaintID, err)
	interior, err := a.catalog.Interior(ctx, o.InteriorID)
	resolve(orderdomain.FieldInteriorID, o.InteriorID, err)
	tech, err := a.catalog.Technology(ctx, o.TechnologyID)
	resolve(orderdomain.FieldTechnologyID, o.TechnologyID, err)
	wheels, err := a.catalog.Wheels(ctx, o.WheelID)
	resolve(orderdomain.FieldWheelID, o.WheelID, err)

	if failure != nil {
		return models.OrderDetails{}, failure
	}
	if len(refs) > 0 {
		return models.OrderDetails{}, errors.Join(refs...)
	}
	return models.OrderDetails{
		Order:      o,
		PaintColor: paint,
		Interior:   interior,
		Technology: tech,
		Wheels:     wheels,
	}, nil
}

// UnresolvedOrder is an order AssembleAll could not resolve.
type UnresolvedOrder struct {
	OrderID int
	Err     error
}

// AssemblyResult is the outcome of AssembleAll. Orders keeps input order.
type AssemblyResult struct {
	Orders     []models.OrderDetails
	Unresolved []UnresolvedOrder
}

// AssembleAll assembles each order independently. An order with a dangling
// reference is skipped and listed in Unresolved instead of failing the batch;
// any other failure aborts and is returned.
func (a *Assembler) AssembleAll(ctx context.Context, orders []models.Order) (AssemblyResult, error) {
	res := AssemblyResult{Orders: make([]models.OrderDetails, 0, len(orders))}
	for _, o := range orders {
		d, err := a.Assemble(ctx, o)
		if err != nil {
			if errors.Is(err, orderdomain.ErrReferenceNotFound) {
				res.Unresolved = append(res.Unresolved, UnresolvedOrder{OrderID: o.ID, Err: err})
				continue
			}
			return AssemblyResult{}, fmt.Errorf("assemble order %d: %w", o.ID, err)
		}
		res.Orders = append(res.Orders, d)
	}
	return res, nil
}
