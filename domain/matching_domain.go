package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessStoreMatching = "matching stored"
	MessageSuccessGetMatchings  = "matchings retrieved successfully"
	MessageSuccessBatchMatch    = "batch match results retrieved successfully"

	MessageFailedStoreMatching = "failed to store matching"
	MessageFailedGetMatchings  = "failed to retrieve matchings"
	MessageFailedExportCSV     = "failed to export matchings csv"
	MessageFailedBatchMatch    = "matching api error"

	ErrLineItemNotFound = errors.New("line item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrMatchingUpstream = errors.New("matching api error")
)

type (
	StoreMatchingRequest struct {
		LineItemID         uint           `json:"line_item_id" validate:"required"`
		ProductID          uint           `json:"product_id" validate:"required"`
		UserConfirmed      bool           `json:"user_confirmed"`
		UserAdjustedFields map[string]any `json:"user_adjusted_fields"`
	}

	StoreMatchingResponse struct {
		MatchingID uint `json:"matching_id"`
	}

	MatchingResponse struct {
		ID                 uint           `json:"id"`
		LineItemID         uint           `json:"line_item_id"`
		ProductID          uint           `json:"product_id"`
		UserConfirmed      bool           `json:"user_confirmed"`
		MatchedAt          time.Time      `json:"matched_at"`
		UserAdjustedFields map[string]any `json:"user_adjusted_fields,omitempty"`
	}

	BatchMatchRequest struct {
		Queries []string `json:"queries" validate:"required"`
	}

	MatchCandidate struct {
		Match string  `json:"match"`
		Score float64 `json:"score"`
	}

	BatchMatchResponse struct {
		Results map[string][]MatchCandidate `json:"results"`
	}
)
