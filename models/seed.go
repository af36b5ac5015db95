package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string { return &s }

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func nullPrice(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// Seed inserts the demo catalog. Inserts are upserts on the primary key, so
// running it on a populated database is safe.
func Seed(db *gorm.DB) error {
	categories := []Category{
		{ID: "cat_men", Name: "Men", Slug: "men", Description: "Men's clothing and accessories"},
		{ID: "cat_women", Name: "Women", Slug: "women", Description: "Women's clothing and accessories"},
		{ID: "cat_accessories", Name: "Accessories", Slug: "accessories", Description: "Fashion accessories for all"},
		{ID: "cat_winter", Name: "Winter", Slug: "winter", Description: "Winter collection to keep you warm and stylish"},
		{ID: "cat_sale", Name: "Sale", Slug: "sale", Description: "Discounted items at great prices"},
	}

	products := []Product{
		{
			ID:            "prod_001",
			Name:          "Reflective Running Jogging Jacket",
			Description:   "Stay visible and stylish with our reflective running jacket. Perfect for early morning or evening jogs.",
			Price:         price(350),
			OriginalPrice: nullPrice(400),
			CategoryID:    strPtr("cat_winter"),
			Featured:      true,
			InStock:       true,
		},
		{
			ID:          "prod_002",
			Name:        "Vibrant Yellow Puffer Jacket",
			Description: "Make a statement with this bold yellow puffer jacket. Warm, comfortable, and eye-catching.",
			Price:       price(450),
			CategoryID:  strPtr("cat_winter"),
			Featured:    true,
			InStock:     true,
		},
		{
			ID:            "prod_003",
			Name:          "Classic White T-Shirt",
			Description:   "A wardrobe essential. Our classic white tee is made from premium cotton for ultimate comfort.",
			Price:         price(35),
			OriginalPrice: nullPrice(45),
			CategoryID:    strPtr("cat_men"),
			Featured:      true,
			InStock:       true,
		},
		{
			ID:          "prod_004",
			Name:        "Slim Fit Black Jeans",
			Description: "These versatile black jeans offer both style and comfort for everyday wear.",
			Price:       price(85),
			CategoryID:  strPtr("cat_men"),
			Featured:    true,
			InStock:     true,
		},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
		return err
	}
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products).Error; err != nil {
		return err
	}

	// Image rows have generated keys, so upserting would duplicate them.
	var existing int64
	if err := db.Model(&ProductImage{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	images := make([]ProductImage, 0, len(products))
	for _, p := range products {
		images = append(images, ProductImage{ProductID: p.ID, URL: "/placeholder.svg?height=600&width=600"})
	}
	return db.Create(&images).Error
}
