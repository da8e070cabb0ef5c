package entities

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Documents []*Document `gorm:"foreignKey:UserID"`
	Matchings []*Matching `gorm:"foreignKey:UserID"`
	Timestamp
}
