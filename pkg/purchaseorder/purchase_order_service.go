package purchaseorder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils/storage"
	"gorm.io/gorm"
)

const (
	ProgressProcessing = "processing"
	ProgressReview     = "review"
	ProgressFinalized  = "finalized"
	ProgressFailed     = "failed"
)

type (
	PurchaseOrderService interface {
		GetPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrderResponse, error)
		GetPurchaseOrderByID(ctx context.Context, id uint) (domain.PurchaseOrderResponse, error)
		CreatePurchaseOrder(ctx context.Context, req domain.CreatePurchaseOrderRequest) (domain.PurchaseOrderResponse, error)
		NextPurchaseOrderID(ctx context.Context) (uint, error)
		DeletePurchaseOrder(ctx context.Context, id uint) error
	}

	purchaseOrderService struct {
		purchaseOrderRepository PurchaseOrderRepository
		storage                 storage.Storage
	}
)

func NewPurchaseOrderService(purchaseOrderRepository PurchaseOrderRepository, storage storage.Storage) PurchaseOrderService {
	return &purchaseOrderService{
		purchaseOrderRepository: purchaseOrderRepository,
		storage:                 storage,
	}
}

func (s *purchaseOrderService) GetPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrderResponse, error) {
	orders, err := s.purchaseOrderRepository.GetPurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.PurchaseOrderResponse
	for _, order := range orders {
		response = append(response, toPurchaseOrderResponse(order))
	}
	return response, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, id uint) (domain.PurchaseOrderResponse, error) {
	order, err := s.purchaseOrderRepository.GetPurchaseOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseOrderResponse{}, domain.ErrPurchaseOrderNotFound
		}
		return domain.PurchaseOrderResponse{}, err
	}
	return toPurchaseOrderResponse(order), nil
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req domain.CreatePurchaseOrderRequest) (domain.PurchaseOrderResponse, error) {
	progress := req.Progress
	if progress == "" {
		progress = ProgressProcessing
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.PurchaseOrderResponse{}, domain.ErrInvalidOrderDate
		}
		date = parsed
	}

	order := &entities.PurchaseOrder{
		Progress:   progress,
		Date:       date,
		DocumentID: req.DocumentID,
	}

	if err := s.purchaseOrderRepository.CreatePurchaseOrder(ctx, order); err != nil {
		return domain.PurchaseOrderResponse{}, err
	}

	return toPurchaseOrderResponse(order), nil
}

// NextPurchaseOrderID is advisory only: nothing is reserved, and two
// concurrent callers can observe the same value. Actual ids come from the
// database on create.
func (s *purchaseOrderService) NextPurchaseOrderID(ctx context.Context) (uint, error) {
	maxID, err := s.purchaseOrderRepository.GetMaxPurchaseOrderID(ctx)
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

func (s *purchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uint) error {
	order, err := s.purchaseOrderRepository.GetPurchaseOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPurchaseOrderNotFound
		}
		return err
	}

	if err := s.purchaseOrderRepository.DeletePurchaseOrderCascade(ctx, order); err != nil {
		return err
	}

	// rows are gone; drop the stored file too so no bytes orphan under the
	// deleted document's key. Best effort, the cascade already committed.
	if order.Document != nil {
		key := fmt.Sprintf("documents/%d/%s", order.DocumentID, order.Document.Filename)
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("error deleting stored file %s: %v", key, err)
		}
	}
	return nil
}

func toPurchaseOrderResponse(order *entities.PurchaseOrder) domain.PurchaseOrderResponse {
	var filename *string
	if order.Document != nil {
		filename = &order.Document.Filename
	}
	return domain.PurchaseOrderResponse{
		ID:               order.ID,
		Progress:         order.Progress,
		Date:             order.Date.Format("2006-01-02"),
		DocumentID:       order.DocumentID,
		DocumentFilename: filename,
	}
}
