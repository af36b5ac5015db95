package catalog

import (
	"time"

	"github.com/chukyobi/lumina-eccomerce/models"
)

// PlaceholderImageURL is served when a product has no image rows.
const PlaceholderImageURL = "/placeholder.svg"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	Images        []string  `json:"images,omitempty"`
	CategoryID    string    `json:"categoryId,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Featured      bool      `json:"featured"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewProduct maps an entity row to the list view model. The representative
// image is the first preloaded image row (lowest id); a product with no
// images gets the placeholder. A null category foreign key maps to a nil
// category, not an error.
func NewProduct(row models.Product) Product {
	p := Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price.InexactFloat64(),
		ImageURL:    PlaceholderImageURL,
		Featured:    row.Featured,
		InStock:     row.InStock,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.OriginalPrice.Valid {
		v := row.OriginalPrice.Decimal.InexactFloat64()
		p.OriginalPrice = &v
	}
	if len(row.Images) > 0 {
		p.ImageURL = row.Images[0].URL
	}
	if row.CategoryID != nil {
		p.CategoryID = *row.CategoryID
	}
	if row.Category != nil {
		c := NewCategory(*row.Category)
		p.Category = &c
	}
	return p
}

// NewProductDetail is NewProduct plus the full ordered image list.
func NewProductDetail(row models.Product) Product {
	p := NewProduct(row)
	if len(row.Images) > 0 {
		p.Images = make([]string, len(row.Images))
		for i, img := range row.Images {
			p.Images[i] = img.URL
		}
	}
	return p
}

func NewCategory(row models.Category) Category {
	return Category{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		ImageURL:    row.ImageURL,
	}
}
