package entities

import "time"

type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Filename   string    `gorm:"not null" json:"filename"`
	UploadTime time.Time `json:"upload_time"`
	UserID     *uint     `json:"user_id,omitempty"`

	User          *User          `gorm:"foreignKey:UserID"`
	LineItems     []*LineItem    `gorm:"foreignKey:DocumentID"`
	PurchaseOrder *PurchaseOrder `gorm:"foreignKey:DocumentID"`
	Timestamp
}
