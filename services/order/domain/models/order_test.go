package models

import (
	"testing"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/carbuilder/services/catalog/domain/models"
)

func TestNewOrder(t *testing.T) {
	sel := Selection{PaintID: 3, InteriorID: 4, TechnologyID: 2, WheelID: 1}
	o := NewOrder(sel)

	if o.ID != 0 {
		t.Fatalf("expected unassigned ID, got %d", o.ID)
	}
	if !o.CreatedAt.IsZero() {
		t.Fatal("expected zero CreatedAt before insert")
	}
	if o.Complete {
		t.Fatal("new orders must not be complete")
	}
	if o.Selection != sel {
		t.Fatalf("expected selection %+v, got %+v", sel, o.Selection)
	}
	if o.PaintID != 3 {
		t.Fatalf("expected promoted PaintID 3, got %d", o.PaintID)
	}
}

func TestOrderDetails_Total(t *testing.T) {
	d := OrderDetails{
		PaintColor: catalogmodels.PaintColor{Price: decimal.NewFromInt(700)},
		Interior:   catalogmodels.Interior{Price: decimal.NewFromInt(850)},
		Technology: catalogmodels.Technology{Price: decimal.NewFromInt(600)},
		Wheels:     catalogmodels.Wheels{Price: decimal.RequireFromString("400.50")},
	}
	want := decimal.RequireFromString("2550.50")
	if !d.Total().Equal(want) {
		t.Fatalf("expected total %s, got %s", want, d.Total())
	}
}
