package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessUploadDocument = "file uploaded successfully"
	MessageSuccessGetDocuments   = "documents retrieved successfully"
	MessageSuccessGetLineItems   = "line items retrieved successfully"
	MessageSuccessSaveLineItems  = "line items saved successfully"

	MessageFailedUploadDocument = "failed to upload document"
	MessageFailedGetDocuments   = "failed to retrieve documents"
	MessageFailedGetLineItems   = "failed to retrieve line items"
	MessageFailedSaveLineItems  = "failed to save line items"
	MessageFailedExtraction     = "extraction api error"

	ErrDocumentNotFound   = errors.New("document not found")
	ErrEmptyUploadFile    = errors.New("upload file is empty")
	ErrExtractionUpstream = errors.New("extraction api error")
)

type (
	UploadDocumentResponse struct {
		DocumentID         uint            `json:"document_id"`
		ExtractedLineItems json.RawMessage `json:"extracted_line_items"`
	}

	DocumentResponse struct {
		ID         uint      `json:"id"`
		Filename   string    `json:"filename"`
		UploadTime time.Time `json:"upload_time"`
	}

	LineItemRequest struct {
		Description string   `json:"description"`
		Quantity    *int     `json:"quantity"`
		UnitMeasure *string  `json:"uom"`
		Price       *float64 `json:"price"`
	}

	LineItemResponse struct {
		ID          uint     `json:"id"`
		Description string   `json:"description"`
		Quantity    *int     `json:"quantity"`
		UnitMeasure *string  `json:"uom"`
		Price       *float64 `json:"price"`
	}
)
