package catalog

import (
	"errors"
	"log"

	"github.com/chukyobi/lumina-eccomerce/models"
	"gorm.io/gorm"
)

// Filter narrows a product list. Zero values mean "no filter"; set fields
// combine as AND.
type Filter struct {
	CategoryID string
	Featured   bool
}

// Reader translates catalog rows into view models. Every read degrades on
// failure — empty list or nil instead of an error — so a transient store
// problem never crashes a page. Failures show up in the logs, not in
// responses.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id ASC")
}

// List returns products matching the filter.
func (r *Reader) List(filter Filter) []Product {
	query := r.db.Model(&models.Product{})
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Featured {
		query = query.Where("featured = ?", true)
	}
	return r.list(query)
}

func (r *Reader) ListAll() []Product {
	return r.List(Filter{})
}

func (r *Reader) ListFeatured() []Product {
	return r.List(Filter{Featured: true})
}

func (r *Reader) ListByCategory(categoryID string) []Product {
	return r.List(Filter{CategoryID: categoryID})
}

func (r *Reader) ListByCategorySlug(slug string) []Product {
	category := r.GetCategoryBySlug(slug)
	if category == nil {
		return []Product{}
	}
	return r.ListByCategory(category.ID)
}

// GetByID returns the product with its full image list, or nil when the
// product does not exist or the store is unreachable.
func (r *Reader) GetByID(id string) *Product {
	var row models.Product
	err := r.db.
		Preload("Category").
		Preload("Images", imageOrder).
		First(&row, "id = ?", id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("catalog: product lookup %q failed: %v", id, err)
		}
		return nil
	}
	detail := NewProductDetail(row)
	return &detail
}

func (r *Reader) ListCategories() []Category {
	var rows []models.Category
	if err := r.db.Find(&rows).Error; err != nil {
		log.Printf("catalog: category list failed: %v", err)
		return []Category{}
	}
	out := make([]Category, len(rows))
	for i, row := range rows {
		out[i] = NewCategory(row)
	}
	return out
}

func (r *Reader) GetCategoryBySlug(slug string) *Category {
	var row models.Category
	if err := r.db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("catalog: category lookup %q failed: %v", slug, err)
		}
		return nil
	}
	category := NewCategory(row)
	return &category
}

func (r *Reader) list(query *gorm.DB) []Product {
	var rows []models.Product
	err := query.
		Preload("Category").
		Preload("Images", imageOrder).
		Find(&rows).Error
	if err != nil {
		log.Printf("catalog: product list failed: %v", err)
		return []Product{}
	}
	out := make([]Product, len(rows))
	for i, row := range rows {
		out[i] = NewProduct(row)
	}
	return out
}
