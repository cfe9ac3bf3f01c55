package model

import (
	"time"

	"github.com/google/uuid"
)

// KeywordModel mirrors the 'keywords' table.
type KeywordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(25);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KeywordModel) TableName() string {
	return "keywords"
}
