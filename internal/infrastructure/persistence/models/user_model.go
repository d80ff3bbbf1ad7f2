package models

import (
	"time"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Username  string    `gorm:"not null;index;type:varchar(255)"`
	Email     string    `gorm:"not null;index;type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
