package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'"`
	FirstName    string    `gorm:"type:varchar(50);not null"`
	MiddleName   string    `gorm:"type:varchar(50)"`
	LastName     string    `gorm:"type:varchar(50);not null"`
	Nickname     string    `gorm:"type:varchar(50)"`
	DateOfBirth  time.Time `gorm:"type:date;not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	Bio          string    `gorm:"type:varchar(200)"`
	AddressID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Address *LocationModel `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
