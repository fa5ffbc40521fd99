package models

import (
	"time"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/carbuilder/services/catalog/domain/models"
)

// Selection is the client-chosen part of an order: one option id per catalog.
type Selection struct {
	PaintID      int
	InteriorID   int
	TechnologyID int
	WheelID      int
}

// Order is the bare order aggregate. ID and CreatedAt are assigned by the
// order store on insert; Complete only ever moves from false to true.
type Order struct {
	ID        int
	CreatedAt time.Time
	Selection
	Complete bool
}

// NewOrder builds an unsaved, incomplete order for sel.
func NewOrder(sel Selection) Order {
	return Order{Selection: sel}
}

// OrderDetails is an order with each foreign key resolved to its catalog option.
type OrderDetails struct {
	Order
	PaintColor catalogmodels.PaintColor
	Interior   catalogmodels.Interior
	Technology catalogmodels.Technology
	Wheels     catalogmodels.Wheels
}

// Total is the sum of the four selected option prices.
func (d OrderDetails) Total() decimal.Decimal {
	return decimal.Sum(d.PaintColor.Price, d.Interior.Price, d.Technology.Price, d.Wheels.Price)
}
