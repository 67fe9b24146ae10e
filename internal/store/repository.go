package store

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/openmerch/catalogd/internal/domain"
)

// ProductRepository handles database operations for catalog products.
type ProductRepository interface {
	// Create inserts a new row and writes the generated id back onto the
	// entity. A product that already carries an id is rejected with a
	// DataValidationError rather than silently duplicated.
	Create(ctx context.Context, product *domain.Product) error

	// Update persists the current in-memory field values over the row
	// identified by the product's id. Calling it on an entity without an id
	// fails with a DataValidationError before any store operation.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes the row identified by the product's id. Behavior on a
	// non-existent id is store-defined.
	Delete(ctx context.Context, product *domain.Product) error

	// All returns every stored product in insertion order.
	All(ctx context.Context) ([]domain.Product, error)

	// Find returns the product with the given id, or nil if none exists.
	Find(ctx context.Context, id int64) (*domain.Product, error)

	// FindByName returns all products with an exact, case-sensitive name match.
	FindByName(ctx context.Context, name string) ([]domain.Product, error)

	// FindByAvailability returns all products matching the availability flag.
	FindByAvailability(ctx context.Context, available bool) ([]domain.Product, error)

	// FindByCategory returns all products in the given category.
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)

	// FindByPrice returns all products whose price equals the given value,
	// accepted as a decimal or its string form.
	FindByPrice(ctx context.Context, price interface{}) ([]domain.Product, error)
}

// GormProductRepository is the GORM implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.ID != nil {
		return domain.NewDataValidationError(
			"create called on a product that already has id %d", *product.ID)
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if product.ID == nil {
		return domain.NewDataValidationError("update called with empty id field")
	}
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	if product.ID == nil {
		return domain.NewDataValidationError("delete called with empty id field")
	}
	return r.db.WithContext(ctx).Delete(&domain.Product{}, *product.ID).Error
}

func (r *GormProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Find(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByAvailability(ctx context.Context, available bool) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("available = ?", available).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByPrice(ctx context.Context, price interface{}) ([]domain.Product, error) {
	value, err := normalizePrice(price)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	err = r.db.WithContext(ctx).Where("price = ?", value).Find(&products).Error
	return products, err
}

// normalizePrice coerces a price argument to an exact decimal. Callers may
// hold the price as a string, e.g. when it was lifted straight out of a query
// parameter, so stray whitespace and quotes are stripped before parsing.
func normalizePrice(price interface{}) (decimal.Decimal, error) {
	switch v := price.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		cleaned := strings.Trim(strings.TrimSpace(v), `"`)
		value, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Decimal{}, domain.NewDataValidationError(
				"invalid price %q: not a decimal value", v)
		}
		return value, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, domain.NewDataValidationError(
			"invalid price argument of type %T", price)
	}
}
