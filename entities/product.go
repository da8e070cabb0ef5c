package entities

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	SKU         *string `json:"sku,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	Matchings []*Matching `gorm:"foreignKey:ProductID"`
	Timestamp
}
