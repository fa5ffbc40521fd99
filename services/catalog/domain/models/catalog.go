// Package models holds the four catalog option types. Options are value
// objects: seeded once, never mutated, compared by ID within their own catalog.
package models

import "github.com/shopspring/decimal"

// Kind names one of the four catalogs.
type Kind string

const (
	KindPaintColor Kind = "paintColor"
	KindInterior   Kind = "interior"
	KindTechnology Kind = "technology"
	KindWheels     Kind = "wheels"
)

// Kinds lists every catalog in display order.
var Kinds = []Kind{KindPaintColor, KindInterior, KindTechnology, KindWheels}

// PaintColor is an exterior paint option.
type PaintColor struct {
	ID    int
	Color string
	Price decimal.Decimal
}

// Interior is a seat material option.
type Interior struct {
	ID       int
	Material string
	Price    decimal.Decimal
}

// Technology is an electronics package option.
type Technology struct {
	ID      int
	Package string
	Price   decimal.Decimal
}

// Wheels is a wheel style option.
type Wheels struct {
	ID    int
	Style string
	Price decimal.Decimal
}
