package entities

type LineItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	DocumentID  uint     `gorm:"index;not null" json:"document_id"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Quantity    *int     `json:"quantity,omitempty"`
	UnitMeasure *string  `json:"uom,omitempty"`
	Price       *float64 `json:"price,omitempty"`

	Document  *Document   `gorm:"foreignKey:DocumentID"`
	Matchings []*Matching `gorm:"foreignKey:LineItemID"`
	Timestamp
}
