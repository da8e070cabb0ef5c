package matching

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/datatypes"
)

type (
	MatchingService interface {
		StoreMatching(ctx context.Context, req domain.StoreMatchingRequest, userID *uint) (domain.StoreMatchingResponse, error)
		GetMatchings(ctx context.Context) ([]domain.MatchingResponse, error)
		ExportCSV(ctx context.Context) ([]byte, error)
		ExternalBatchMatch(ctx context.Context, queries []string) (domain.BatchMatchResponse, error)
	}

	matchingService struct {
		matchingRepository MatchingRepository
		matchClient        MatchClient
	}
)

func NewMatchingService(matchingRepository MatchingRepository, matchClient MatchClient) MatchingService {
	return &matchingService{
		matchingRepository: matchingRepository,
		matchClient:        matchClient,
	}
}

func (s *matchingService) StoreMatching(ctx context.Context, req domain.StoreMatchingRequest, userID *uint) (domain.StoreMatchingResponse, error) {
	exists, err := s.matchingRepository.LineItemExists(ctx, req.LineItemID)
	if err != nil {
		return domain.StoreMatchingResponse{}, err
	}
	if !exists {
		return domain.StoreMatchingResponse{}, domain.ErrLineItemNotFound
	}

	exists, err = s.matchingRepository.ProductExists(ctx, req.ProductID)
	if err != nil {
		return domain.StoreMatchingResponse{}, err
	}
	if !exists {
		return domain.StoreMatchingResponse{}, domain.ErrProductNotFound
	}

	matching := &entities.Matching{
		LineItemID:    req.LineItemID,
		ProductID:     req.ProductID,
		UserID:        userID,
		UserConfirmed: req.UserConfirmed,
		MatchedAt:     time.Now().UTC(),
	}
	if req.UserAdjustedFields != nil {
		matching.UserAdjustedFields = datatypes.JSONMap(req.UserAdjustedFields)
	}

	if err := s.matchingRepository.CreateMatching(ctx, matching); err != nil {
		return domain.StoreMatchingResponse{}, err
	}

	return domain.StoreMatchingResponse{MatchingID: matching.ID}, nil
}

func (s *matchingService) GetMatchings(ctx context.Context) ([]domain.MatchingResponse, error) {
	matchings, err := s.matchingRepository.GetMatchings(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.MatchingResponse
	for _, m := range matchings {
		response = append(response, domain.MatchingResponse{
			ID:                 m.ID,
			LineItemID:         m.LineItemID,
			ProductID:          m.ProductID,
			UserConfirmed:      m.UserConfirmed,
			MatchedAt:          m.MatchedAt,
			UserAdjustedFields: m.UserAdjustedFields,
		})
	}
	return response, nil
}

func (s *matchingService) ExportCSV(ctx context.Context) ([]byte, error) {
	matchings, err := s.matchingRepository.GetMatchings(ctx)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"id", "line_item_id", "product_id", "user_confirmed", "matched_at", "user_adjusted_fields"}); err != nil {
		return nil, err
	}

	for _, m := range matchings {
		adjusted := ""
		if m.UserAdjustedFields != nil {
			raw, err := json.Marshal(m.UserAdjustedFields)
			if err != nil {
				return nil, err
			}
			adjusted = string(raw)
		}

		record := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			strconv.FormatUint(uint64(m.LineItemID), 10),
			strconv.FormatUint(uint64(m.ProductID), 10),
			strconv.FormatBool(m.UserConfirmed),
			m.MatchedAt.Format(time.RFC3339),
			adjusted,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *matchingService) ExternalBatchMatch(ctx context.Context, queries []string) (domain.BatchMatchResponse, error) {
	return s.matchClient.BatchMatch(ctx, queries)
}
