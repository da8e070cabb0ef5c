package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Matching struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	LineItemID         uint              `gorm:"index;not null" json:"line_item_id"`
	ProductID          uint              `gorm:"index;not null" json:"product_id"`
	UserID             *uint             `json:"user_id,omitempty"`
	UserConfirmed      bool              `gorm:"default:false" json:"user_confirmed"`
	MatchedAt          time.Time         `json:"matched_at"`
	UserAdjustedFields datatypes.JSONMap `gorm:"type:jsonb" json:"user_adjusted_fields,omitempty"`

	LineItem *LineItem `gorm:"foreignKey:LineItemID"`
	Product  *Product  `gorm:"foreignKey:ProductID"`
	User     *User     `gorm:"foreignKey:UserID"`
	Timestamp
}
