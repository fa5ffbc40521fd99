package memory

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/carbuilder/services/catalog/domain/models"
)

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func seedPaintColors() []models.PaintColor {
	return []models.PaintColor{
		{ID: 1, Color: "Silver", Price: price(500)},
		{ID: 2, Color: "Midnight Blue", Price: price(750)},
		{ID: 3, Color: "Firebrick Red", Price: price(700)},
		{ID: 4, Color: "Spring Green", Price: price(600)},
	}
}

func seedInteriors() []models.Interior {
	return []models.Interior{
		{ID: 1, Material: "Beige Fabric", Price: price(300)},
		{ID: 2, Material: "Charcoal Fabric", Price: price(350)},
		{ID: 3, Material: "White Leather", Price: price(800)},
		{ID: 4, Material: "Black Leather", Price: price(850)},
	}
}

func seedTechnologies() []models.Technology {
	return []models.Technology{
		{ID: 1, Package: "Basic Package", Price: price(200)},
		{ID: 2, Package: "Navigation Package", Price: price(600)},
		{ID: 3, Package: "Visibility Package", Price: price(750)},
		{ID: 4, Package: "Ultra Package", Price: price(1200)},
	}
}

func seedWheels() []models.Wheels {
	return []models.Wheels{
		{ID: 1, Style: "17-inch Pair Radial", Price: price(400)},
		{ID: 2, Style: "17-inch Pair Radial Black", Price: price(450)},
		{ID: 3, Style: "18-inch Pair Spoke Silver", Price: price(500)},
		{ID: 4, Style: "18-inch Pair Spoke Black", Price: price(550)},
	}
}
