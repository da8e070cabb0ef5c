package domain

import "errors"

var (
	MessageSuccessGetPurchaseOrders   = "purchase orders retrieved successfully"
	MessageSuccessGetPurchaseOrder    = "purchase order retrieved successfully"
	MessageSuccessCreatePurchaseOrder = "purchase order created successfully"
	MessageSuccessDeletePurchaseOrder = "purchase order deleted successfully"
	MessageSuccessGetNextID           = "next purchase order id retrieved successfully"

	MessageFailedGetPurchaseOrders   = "failed to retrieve purchase orders"
	MessageFailedGetPurchaseOrder    = "failed to retrieve purchase order"
	MessageFailedCreatePurchaseOrder = "failed to create purchase order"
	MessageFailedDeletePurchaseOrder = "failed to delete purchase order"
	MessageFailedGetNextID           = "failed to retrieve next purchase order id"

	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrInvalidOrderDate      = errors.New("invalid order date")
)

type (
	CreatePurchaseOrderRequest struct {
		Progress   string `json:"progress" validate:"omitempty,oneof=processing review finalized failed"`
		Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		DocumentID uint   `json:"document_id" validate:"required"`
	}

	PurchaseOrderResponse struct {
		ID               uint    `json:"id"`
		Progress         string  `json:"progress"`
		Date             string  `json:"date"`
		DocumentID       uint    `json:"document_id"`
		DocumentFilename *string `json:"document_filename"`
	}

	NextPurchaseOrderIDResponse struct {
		NextID uint `json:"next_id"`
	}
)
