package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. The administrators set
// lives in the business_administrators join table; the primary owner is a
// plain foreign key and never appears in the join table.
type BusinessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Description    string    `gorm:"type:varchar(200)"`
	BusinessType   string    `gorm:"type:varchar(50);not null"`
	PrimaryOwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressID      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Address        *LocationModel `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
	Administrators []*UserModel   `gorm:"many2many:business_administrators;joinForeignKey:BusinessID;joinReferences:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
