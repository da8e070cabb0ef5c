package document

import (
	"context"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/gorm"
)

type (
	DocumentRepository interface {
		CreateDocument(ctx context.Context, document *entities.Document) error
		GetDocumentByID(ctx context.Context, id uint) (*entities.Document, error)
		GetDocuments(ctx context.Context) ([]*entities.Document, error)
		GetLineItems(ctx context.Context, documentID uint) ([]*entities.LineItem, error)
		ReplaceLineItems(ctx context.Context, documentID uint, items []*entities.LineItem) error
	}

	documentRepository struct {
		db *gorm.DB
	}
)

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) CreateDocument(ctx context.Context, document *entities.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetDocumentByID(ctx context.Context, id uint) (*entities.Document, error) {
	var document entities.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) GetDocuments(ctx context.Context) ([]*entities.Document, error) {
	var documents []*entities.Document
	if err := r.db.WithContext(ctx).Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) GetLineItems(ctx context.Context, documentID uint) ([]*entities.LineItem, error) {
	var items []*entities.LineItem
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceLineItems deletes every line item of the document and inserts the
// provided set in one transaction, so a partial failure never leaves the
// document with a half-written item set.
func (r *documentRepository) ReplaceLineItems(ctx context.Context, documentID uint, items []*entities.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&entities.LineItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
