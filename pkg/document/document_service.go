package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils/storage"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/extraction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DocumentService interface {
		UploadDocument(ctx context.Context, filename string, contentType string, data []byte, userID *uint) (domain.UploadDocumentResponse, error)
		GetDocuments(ctx context.Context) ([]domain.DocumentResponse, error)
		GetLineItems(ctx context.Context, documentID uint) ([]domain.LineItemResponse, error)
		SaveLineItems(ctx context.Context, documentID uint, items []domain.LineItemRequest) ([]domain.LineItemResponse, error)
	}

	documentService struct {
		documentRepository DocumentRepository
		extractionClient   extraction.Client
		storage            storage.Storage
	}
)

func NewDocumentService(documentRepository DocumentRepository, extractionClient extraction.Client, storage storage.Storage) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		extractionClient:   extractionClient,
		storage:            storage,
	}
}

// UploadDocument commits the Document row before calling the extraction
// collaborator, so an upstream failure leaves an uploaded document behind
// that extraction can be retried against.
func (s *documentService) UploadDocument(ctx context.Context, filename string, contentType string, data []byte, userID *uint) (domain.UploadDocumentResponse, error) {
	if len(data) == 0 {
		return domain.UploadDocumentResponse{}, domain.ErrEmptyUploadFile
	}
	if filename == "" {
		filename = uuid.NewString()
	}

	doc := &entities.Document{
		Filename:   filename,
		UploadTime: time.Now().UTC(),
		UserID:     userID,
	}
	if err := s.documentRepository.CreateDocument(ctx, doc); err != nil {
		return domain.UploadDocumentResponse{}, err
	}

	key := fmt.Sprintf("documents/%d/%s", doc.ID, filename)
	if err := s.storage.Save(ctx, key, contentType, data); err != nil {
		return domain.UploadDocumentResponse{}, err
	}

	extracted, err := s.extractionClient.Extract(ctx, filename, contentType, data)
	if err != nil {
		return domain.UploadDocumentResponse{DocumentID: doc.ID}, err
	}

	return domain.UploadDocumentResponse{
		DocumentID:         doc.ID,
		ExtractedLineItems: extracted,
	}, nil
}

func (s *documentService) GetDocuments(ctx context.Context) ([]domain.DocumentResponse, error) {
	documents, err := s.documentRepository.GetDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.DocumentResponse
	for _, d := range documents {
		response = append(response, domain.DocumentResponse{
			ID:         d.ID,
			Filename:   d.Filename,
			UploadTime: d.UploadTime,
		})
	}
	return response, nil
}

func (s *documentService) GetLineItems(ctx context.Context, documentID uint) ([]domain.LineItemResponse, error) {
	if _, err := s.documentRepository.GetDocumentByID(ctx, documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}

	items, err := s.documentRepository.GetLineItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return toLineItemResponses(items), nil
}

// SaveLineItems is a full replace: the provided set becomes the document's
// entire item set, whatever existed before.
func (s *documentService) SaveLineItems(ctx context.Context, documentID uint, items []domain.LineItemRequest) ([]domain.LineItemResponse, error) {
	if _, err := s.documentRepository.GetDocumentByID(ctx, documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}

	rows := make([]*entities.LineItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, &entities.LineItem{
			DocumentID:  documentID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitMeasure: item.UnitMeasure,
			Price:       item.Price,
		})
	}

	if err := s.documentRepository.ReplaceLineItems(ctx, documentID, rows); err != nil {
		return nil, err
	}
	return toLineItemResponses(rows), nil
}

func toLineItemResponses(items []*entities.LineItem) []domain.LineItemResponse {
	response := make([]domain.LineItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitMeasure: item.UnitMeasure,
			Price:       item.Price,
		})
	}
	return response
}
