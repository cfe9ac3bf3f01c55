package model

import (
	"time"

	"github.com/google/uuid"
)

// CardModel mirrors the 'marketplace_cards' table. Keyword links live in
// the card_keywords join table.
type CardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Section     string    `gorm:"type:varchar(20);not null;index"`
	Title       string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:varchar(200)"`
	Closes      time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Keywords []*KeywordModel `gorm:"many2many:card_keywords;joinForeignKey:CardID;joinReferences:KeywordID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "marketplace_cards"
}
