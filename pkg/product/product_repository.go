package product

import (
	"context"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetProducts(ctx context.Context) ([]*entities.Product, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}
