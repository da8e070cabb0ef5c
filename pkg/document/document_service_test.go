package document

import (
	"context"
	"encoding/json"
	"fmt"
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

type fakeDocumentRepository struct {
	documents  map[uint]*entities.Document
	lineItems  map[uint][]*entities.LineItem
	nextDocID  uint
	nextItemID uint
}

func newFakeDocumentRepository() *fakeDocumentRepository {
	return &fakeDocumentRepository{
		documents:  map[uint]*entities.Document{},
		lineItems:  map[uint][]*entities.LineItem{},
		nextDocID:  1,
		nextItemID: 1,
	}
}

func (f *fakeDocumentRepository) CreateDocument(ctx context.Context, document *entities.Document) error {
	document.ID = f.nextDocID
	f.nextDocID++
	f.documents[document.ID] = document
	return nil
}

func (f *fakeDocumentRepository) GetDocumentByID(ctx context.Context, id uint) (*entities.Document, error) {
	if d, ok := f.documents[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDocumentRepository) GetDocuments(ctx context.Context) ([]*entities.Document, error) {
	var out []*entities.Document
	for id := uint(1); id < f.nextDocID; id++ {
		if d, ok := f.documents[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepository) GetLineItems(ctx context.Context, documentID uint) ([]*entities.LineItem, error) {
	return f.lineItems[documentID], nil
}

func (f *fakeDocumentRepository) ReplaceLineItems(ctx context.Context, documentID uint, items []*entities.LineItem) error {
	for _, item := range items {
		item.ID = f.nextItemID
		f.nextItemID++
	}
	f.lineItems[documentID] = items
	return nil
}

type fakeExtractionClient struct {
	result json.RawMessage
	err    error
	calls  int
}

func (f *fakeExtractionClient) Extract(ctx context.Context, filename string, contentType string, data []byte) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// -------- tests --------

func TestUploadDocument(t *testing.T) {
	repo := newFakeDocumentRepository()
	extracted := json.RawMessage(`[{"description":"M6 Bolt","quantity":10}]`)
	client := &fakeExtractionClient{result: extracted}
	store := storage.NewLocal(t.TempDir())
	svc := NewDocumentService(repo, client, store)

	resp, err := svc.UploadDocument(context.Background(), "order.pdf", "application/pdf", []byte("%PDF-1.4"), nil)
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.DocumentID)
	assert.JSONEq(t, string(extracted), string(resp.ExtractedLineItems))
	assert.Equal(t, 1, client.calls)

	doc, err := repo.GetDocumentByID(context.Background(), resp.DocumentID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), doc.UploadTime, time.Minute)
}

func TestUploadDocument_IDsIncrease(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{result: json.RawMessage(`[]`)}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	var prev uint
	for i := 0; i < 3; i++ {
		resp, err := svc.UploadDocument(context.Background(), fmt.Sprintf("doc-%d.pdf", i), "application/pdf", []byte("x"), nil)
		require.NoError(t, err)
		assert.Greater(t, resp.DocumentID, prev)
		prev = resp.DocumentID
	}
}

func TestUploadDocument_WritesFileToStorage(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{result: json.RawMessage(`[]`)}
	dir := t.TempDir()
	svc := NewDocumentService(repo, client, storage.NewLocal(dir))

	content := []byte("%PDF-1.4 body")
	resp, err := svc.UploadDocument(context.Background(), "order.pdf", "application/pdf", content, nil)
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, "documents", fmt.Sprint(resp.DocumentID), "order.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadDocument_EmptyFile(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{result: json.RawMessage(`[]`)}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	_, err := svc.UploadDocument(context.Background(), "empty.pdf", "application/pdf", nil, nil)
	require.ErrorIs(t, err, domain.ErrEmptyUploadFile)
	assert.Empty(t, repo.documents)
	assert.Zero(t, client.calls)
}

func TestUploadDocument_ExtractionFailureKeepsDocument(t *testing.T) {
	repo := newFakeDocumentRepository()
	upstreamErr := fmt.Errorf("%w: 500 Internal Server Error", domain.ErrExtractionUpstream)
	client := &fakeExtractionClient{err: upstreamErr}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	resp, err := svc.UploadDocument(context.Background(), "order.pdf", "application/pdf", []byte("x"), nil)
	require.ErrorIs(t, err, domain.ErrExtractionUpstream)

	// the document row survives the upstream failure so extraction can be retried
	assert.Equal(t, uint(1), resp.DocumentID)
	_, getErr := repo.GetDocumentByID(context.Background(), 1)
	assert.NoError(t, getErr)
}

func TestSaveLineItems_ReplacesPreviousSet(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{result: json.RawMessage(`[]`)}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	resp, err := svc.UploadDocument(context.Background(), "order.pdf", "application/pdf", []byte("x"), nil)
	require.NoError(t, err)

	first := []domain.LineItemRequest{
		{Description: "M6 Bolt", Quantity: intPtr(10), UnitMeasure: strPtr("EA"), Price: floatPtr(0.12)},
		{Description: "M6 Nut", Quantity: intPtr(10)},
	}
	_, err = svc.SaveLineItems(context.Background(), resp.DocumentID, first)
	require.NoError(t, err)

	second := []domain.LineItemRequest{
		{Description: "Washer", Quantity: intPtr(4)},
	}
	saved, err := svc.SaveLineItems(context.Background(), resp.DocumentID, second)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Washer", saved[0].Description)

	items, err := svc.GetLineItems(context.Background(), resp.DocumentID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Washer", items[0].Description)
}

func TestGetLineItems_UnknownDocument(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	_, err := svc.GetLineItems(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)

	_, err = svc.SaveLineItems(context.Background(), 42, []domain.LineItemRequest{{Description: "Bolt"}})
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestGetDocuments(t *testing.T) {
	repo := newFakeDocumentRepository()
	client := &fakeExtractionClient{result: json.RawMessage(`[]`)}
	svc := NewDocumentService(repo, client, storage.NewLocal(t.TempDir()))

	for _, name := range []string{"a.pdf", "b.pdf"} {
		_, err := svc.UploadDocument(context.Background(), name, "application/pdf", []byte("x"), nil)
		require.NoError(t, err)
	}

	docs, err := svc.GetDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.pdf", docs[0].Filename)
	assert.Equal(t, "b.pdf", docs[1].Filename)
}
