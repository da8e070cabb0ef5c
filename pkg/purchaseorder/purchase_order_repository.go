package purchaseorder

import (
	"context"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/gorm"
)

type (
	PurchaseOrderRepository interface {
		GetPurchaseOrders(ctx context.Context) ([]*entities.PurchaseOrder, error)
		GetPurchaseOrderByID(ctx context.Context, id uint) (*entities.PurchaseOrder, error)
		CreatePurchaseOrder(ctx context.Context, order *entities.PurchaseOrder) error
		GetMaxPurchaseOrderID(ctx context.Context) (uint, error)
		DeletePurchaseOrderCascade(ctx context.Context, order *entities.PurchaseOrder) error
	}

	purchaseOrderRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) GetPurchaseOrders(ctx context.Context) ([]*entities.PurchaseOrder, error) {
	var orders []*entities.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Document").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *purchaseOrderRepository) GetPurchaseOrderByID(ctx context.Context, id uint) (*entities.PurchaseOrder, error) {
	var order entities.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Document").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *purchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order *entities.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepository) GetMaxPurchaseOrderID(ctx context.Context) (uint, error) {
	var maxID uint
	if err := r.db.WithContext(ctx).
		Model(&entities.PurchaseOrder{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return maxID, nil
}

// DeletePurchaseOrderCascade removes the order's line items, the order row
// and finally the document, all in one transaction. Children go before
// parents so referential integrity holds at every step; the order row holds
// the foreign key to the document, so it has to go before the document does.
func (r *purchaseOrderRepository) DeletePurchaseOrderCascade(ctx context.Context, order *entities.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.DocumentID != 0 {
			if err := tx.Where("document_id = ?", order.DocumentID).Delete(&entities.LineItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("id = ?", order.ID).Delete(&entities.PurchaseOrder{}).Error; err != nil {
			return err
		}
		if order.DocumentID != 0 {
			if err := tx.Where("id = ?", order.DocumentID).Delete(&entities.Document{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
