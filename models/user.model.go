package models

import (
	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	FullName string `gorm:"default:''" json:"fullName"`
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"default:''" json:"phone"`
	Role     string `gorm:"default:'client'" json:"role"` // client, admin
	Password string `gorm:"not null" json:"-"`
}
