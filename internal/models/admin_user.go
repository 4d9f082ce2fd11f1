package models

import "time"

const RoleAdmin = "admin"

// AdminUser backs the dashboard login. Passwords are stored as bcrypt
// hashes only.
type AdminUser struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         string    `gorm:"column:role;type:text;not null" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
