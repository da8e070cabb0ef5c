package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/presenters"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/document"
	"github.com/gofiber/fiber/v2"
)

type (
	DocumentHandler interface {
		UploadDocument(c *fiber.Ctx) error
		GetDocuments(c *fiber.Ctx) error
		GetLineItems(c *fiber.Ctx) error
		SaveLineItems(c *fiber.Ctx) error
	}

	documentHandler struct {
		documentService document.DocumentService
	}
)

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandler{documentService: documentService}
}

// currentUserID reads the authenticated user id from locals, when a gate
// has set one. Routes without a gate yield nil.
func currentUserID(c *fiber.Ctx) *uint {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}

func (h *documentHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	contentType := fileHeader.Header.Get("Content-Type")

	res, err := h.documentService.UploadDocument(c.Context(), fileHeader.Filename, contentType, data, currentUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrExtractionUpstream) {
			// the row is already committed; hand back its id so the
			// caller can retry extraction without re-uploading
			return presenters.ErrorResponseWithData(c, fiber.StatusBadGateway, domain.MessageFailedExtraction, err,
				fiber.Map{"document_id": res.DocumentID})
		}
		if errors.Is(err, domain.ErrEmptyUploadFile) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDocument, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadDocument, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadDocument)
}

func (h *documentHandler) GetDocuments(c *fiber.Ctx) error {
	documents, err := h.documentService.GetDocuments(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDocuments, err)
	}
	return presenters.SuccessResponse(c, documents, fiber.StatusOK, domain.MessageSuccessGetDocuments)
}

func (h *documentHandler) GetLineItems(c *fiber.Ctx) error {
	documentID, err := c.ParamsInt("id")
	if err != nil || documentID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLineItems, domain.ErrParseID)
	}

	items, err := h.documentService.GetLineItems(c.Context(), uint(documentID))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetLineItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLineItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetLineItems)
}

func (h *documentHandler) SaveLineItems(c *fiber.Ctx) error {
	documentID, err := c.ParamsInt("id")
	if err != nil || documentID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveLineItems, domain.ErrParseID)
	}

	var items []domain.LineItemRequest
	if err := c.BodyParser(&items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	saved, err := h.documentService.SaveLineItems(c.Context(), uint(documentID), items)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveLineItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveLineItems, err)
	}

	return presenters.SuccessResponse(c, saved, fiber.StatusOK, domain.MessageSuccessSaveLineItems)
}
