package entities

import "time"

type PurchaseOrder struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Progress   string    `gorm:"not null;default:processing" json:"progress"` // "processing", "review", "finalized", "failed"
	Date       time.Time `gorm:"type:date" json:"date"`
	DocumentID uint      `gorm:"uniqueIndex;not null" json:"document_id"`

	Document *Document `gorm:"foreignKey:DocumentID"`
	Timestamp
}
