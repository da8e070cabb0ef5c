package handlers

import (
	"errors"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/presenters"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/matching"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MatchingHandler interface {
		StoreMatching(c *fiber.Ctx) error
		GetMatchings(c *fiber.Ctx) error
		DownloadCSV(c *fiber.Ctx) error
		ExternalBatchMatch(c *fiber.Ctx) error
	}

	matchingHandler struct {
		matchingService matching.MatchingService
		validator       *validator.Validate
	}
)

func NewMatchingHandler(matchingService matching.MatchingService, validator *validator.Validate) MatchingHandler {
	return &matchingHandler{
		matchingService: matchingService,
		validator:       validator,
	}
}

func (h *matchingHandler) StoreMatching(c *fiber.Ctx) error {
	req := new(domain.StoreMatchingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStoreMatching, err)
	}

	res, err := h.matchingService.StoreMatching(c.Context(), *req, currentUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrLineItemNotFound) || errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedStoreMatching, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreMatching, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStoreMatching)
}

func (h *matchingHandler) GetMatchings(c *fiber.Ctx) error {
	matchings, err := h.matchingService.GetMatchings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMatchings, err)
	}
	return presenters.SuccessResponse(c, matchings, fiber.StatusOK, domain.MessageSuccessGetMatchings)
}

func (h *matchingHandler) DownloadCSV(c *fiber.Ctx) error {
	data, err := h.matchingService.ExportCSV(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportCSV, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=matchings.csv`)
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *matchingHandler) ExternalBatchMatch(c *fiber.Ctx) error {
	req := new(domain.BatchMatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBatchMatch, err)
	}

	res, err := h.matchingService.ExternalBatchMatch(c.Context(), req.Queries)
	if err != nil {
		if errors.Is(err, domain.ErrMatchingUpstream) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedBatchMatch, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBatchMatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBatchMatch)
}
