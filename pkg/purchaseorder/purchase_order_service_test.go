package purchaseorder

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// -------- test fakes --------

type fakePurchaseOrderRepository struct {
	orders    map[uint]*entities.PurchaseOrder
	documents map[uint]*entities.Document
	lineItems map[uint][]*entities.LineItem
	nextID    uint
}

func newFakePurchaseOrderRepository() *fakePurchaseOrderRepository {
	return &fakePurchaseOrderRepository{
		orders:    map[uint]*entities.PurchaseOrder{},
		documents: map[uint]*entities.Document{},
		lineItems: map[uint][]*entities.LineItem{},
		nextID:    1,
	}
}

func (f *fakePurchaseOrderRepository) GetPurchaseOrders(ctx context.Context) ([]*entities.PurchaseOrder, error) {
	var out []*entities.PurchaseOrder
	for id := uint(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakePurchaseOrderRepository) GetPurchaseOrderByID(ctx context.Context, id uint) (*entities.PurchaseOrder, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order *entities.PurchaseOrder) error {
	order.ID = f.nextID
	f.nextID++
	if doc, ok := f.documents[order.DocumentID]; ok {
		order.Document = doc
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakePurchaseOrderRepository) GetMaxPurchaseOrderID(ctx context.Context) (uint, error) {
	var maxID uint
	for id := range f.orders {
		if id > maxID {
			maxID = id
		}
	}
	return maxID, nil
}

func (f *fakePurchaseOrderRepository) DeletePurchaseOrderCascade(ctx context.Context, order *entities.PurchaseOrder) error {
	delete(f.lineItems, order.DocumentID)
	delete(f.orders, order.ID)
	delete(f.documents, order.DocumentID)
	return nil
}

func (f *fakePurchaseOrderRepository) seedDocument(id uint, filename string, itemCount int) {
	f.documents[id] = &entities.Document{Filename: filename}
	f.documents[id].ID = id
	for i := 0; i < itemCount; i++ {
		f.lineItems[id] = append(f.lineItems[id], &entities.LineItem{DocumentID: id})
	}
}

// -------- tests --------

func TestNextPurchaseOrderID(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	next, err := svc.NextPurchaseOrderID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), next)

	repo.seedDocument(1, "a.pdf", 0)
	for i := 0; i < 7; i++ {
		_, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{DocumentID: 1})
		require.NoError(t, err)
	}

	next, err = svc.NextPurchaseOrderID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(8), next)
}

func TestCreatePurchaseOrder_Defaults(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	repo.seedDocument(1, "order.pdf", 2)
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	resp, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{DocumentID: 1})
	require.NoError(t, err)

	assert.Equal(t, ProgressProcessing, resp.Progress)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Date)
	assert.Equal(t, uint(1), resp.DocumentID)
	require.NotNil(t, resp.DocumentFilename)
	assert.Equal(t, "order.pdf", *resp.DocumentFilename)
}

func TestCreatePurchaseOrder_ExplicitDate(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	repo.seedDocument(1, "order.pdf", 0)
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	resp, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{
		DocumentID: 1,
		Progress:   ProgressReview,
		Date:       "2026-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, ProgressReview, resp.Progress)
	assert.Equal(t, "2026-01-15", resp.Date)
}

func TestCreatePurchaseOrder_BadDate(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	_, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{
		DocumentID: 1,
		Date:       "15/01/2026",
	})
	require.ErrorIs(t, err, domain.ErrInvalidOrderDate)
}

func TestGetPurchaseOrderByID_NotFound(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	_, err := svc.GetPurchaseOrderByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
}

func TestDeletePurchaseOrder_Cascades(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	repo.seedDocument(1, "order.pdf", 3)
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	resp, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{DocumentID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchaseOrder(context.Background(), resp.ID))

	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.documents)
	assert.Empty(t, repo.lineItems)

	_, err = svc.GetPurchaseOrderByID(context.Background(), resp.ID)
	require.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
}

// Deleting an order removes the stored document file along with the rows.
func TestDeletePurchaseOrder_RemovesStoredFile(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	repo.seedDocument(1, "order.pdf", 1)

	dir := t.TempDir()
	store := storage.NewLocal(dir)
	require.NoError(t, store.Save(context.Background(), "documents/1/order.pdf", "application/pdf", []byte("%PDF-1.4")))

	svc := NewPurchaseOrderService(repo, store)
	resp, err := svc.CreatePurchaseOrder(context.Background(), domain.CreatePurchaseOrderRequest{DocumentID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchaseOrder(context.Background(), resp.ID))

	_, err = os.Stat(filepath.Join(dir, "documents", "1", "order.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeletePurchaseOrder_NotFound(t *testing.T) {
	repo := newFakePurchaseOrderRepository()
	svc := NewPurchaseOrderService(repo, storage.NewLocal(t.TempDir()))

	err := svc.DeletePurchaseOrder(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrPurchaseOrderNotFound)
}
