package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. Prices are stored as decimal(10,2); conversion
// to a plain number happens in the catalog view layer, never here.
type Product struct {
	ID            string              `gorm:"primaryKey" json:"id"`
	Name          string              `gorm:"not null" json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"originalPrice"`
	CategoryID    *string             `gorm:"index" json:"categoryId"`
	Category      *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images        []ProductImage      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Featured      bool                `json:"featured"`
	InStock       bool                `json:"inStock"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ProductImage is one gallery image. The row with the lowest ID acts as the
// representative image in list views.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID string `gorm:"index;not null" json:"productId"`
	URL       string `gorm:"not null" json:"url"`
}
