package product

import (
	"context"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.ProductResponse
	for _, p := range products {
		response = append(response, domain.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			SKU:         p.SKU,
			Description: p.Description,
		})
	}
	return response, nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	if req.Name == "" {
		return domain.ProductResponse{}, domain.ErrInvalidProductName
	}

	product := &entities.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
	}
	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return domain.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Description: product.Description,
	}, nil
}
