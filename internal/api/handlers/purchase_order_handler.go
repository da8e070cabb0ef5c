package handlers

import (
	"errors"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/presenters"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/purchaseorder"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseOrderHandler interface {
		GetPurchaseOrders(c *fiber.Ctx) error
		GetPurchaseOrder(c *fiber.Ctx) error
		CreatePurchaseOrder(c *fiber.Ctx) error
		NextPurchaseOrderID(c *fiber.Ctx) error
		DeletePurchaseOrder(c *fiber.Ctx) error
	}

	purchaseOrderHandler struct {
		purchaseOrderService purchaseorder.PurchaseOrderService
		validator            *validator.Validate
	}
)

func NewPurchaseOrderHandler(purchaseOrderService purchaseorder.PurchaseOrderService, validator *validator.Validate) PurchaseOrderHandler {
	return &purchaseOrderHandler{
		purchaseOrderService: purchaseOrderService,
		validator:            validator,
	}
}

func (h *purchaseOrderHandler) GetPurchaseOrders(c *fiber.Ctx) error {
	orders, err := h.purchaseOrderService.GetPurchaseOrders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchaseOrders, err)
	}
	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetPurchaseOrders)
}

func (h *purchaseOrderHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchaseOrder, domain.ErrParseID)
	}

	order, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPurchaseOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchaseOrder, err)
	}

	return presenters.SuccessResponse(c, order, fiber.StatusOK, domain.MessageSuccessGetPurchaseOrder)
}

func (h *purchaseOrderHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	req := new(domain.CreatePurchaseOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchaseOrder, err)
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrderDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePurchaseOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePurchaseOrder, err)
	}

	return presenters.SuccessResponse(c, order, fiber.StatusCreated, domain.MessageSuccessCreatePurchaseOrder)
}

func (h *purchaseOrderHandler) NextPurchaseOrderID(c *fiber.Ctx) error {
	nextID, err := h.purchaseOrderService.NextPurchaseOrderID(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNextID, err)
	}

	return presenters.SuccessResponse(c, domain.NextPurchaseOrderIDResponse{NextID: nextID}, fiber.StatusOK, domain.MessageSuccessGetNextID)
}

func (h *purchaseOrderHandler) DeletePurchaseOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchaseOrder, domain.ErrParseID)
	}

	if err := h.purchaseOrderService.DeletePurchaseOrder(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrPurchaseOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePurchaseOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePurchaseOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePurchaseOrder)
}
