package domain

import "errors"

var (
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessCreateProduct = "product created successfully"

	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedCreateProduct = "failed to create product"

	ErrInvalidProductName = errors.New("product name is required")
)

type (
	CreateProductRequest struct {
		Name        string  `json:"name" validate:"required"`
		SKU         *string `json:"sku"`
		Description *string `json:"description"`
	}

	ProductResponse struct {
		ID          uint    `json:"id"`
		Name        string  `json:"name"`
		SKU         *string `json:"sku"`
		Description *string `json:"description"`
	}
)
