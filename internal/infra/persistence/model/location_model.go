// Package model contains the GORM persistence structs. They mirror tables
// one-to-one and never leave the persistence layer; repositories map them
// to and from domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'addresses' table. Each row is owned by exactly
// one user or business and is removed together with its owner.
type LocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StreetNumber string    `gorm:"type:varchar(20);not null"`
	StreetName   string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	Region       string    `gorm:"type:varchar(100);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	PostCode     string    `gorm:"type:varchar(10);not null"`
	District     string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "addresses"
}
