package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Subject      *string   `gorm:"type:varchar(255);unique"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Username     *string   `gorm:"type:varchar(50);unique"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	RefreshToken *string   `gorm:"type:text"`
	StudentID    *string   `gorm:"type:varchar(50)"`
	PhoneNumber  *string   `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts         []PostModel                 `gorm:"foreignKey:AuthorID"`
	Subscriptions []CategorySubscriptionModel `gorm:"foreignKey:UserID"`
	Devices       []UserDeviceModel           `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
