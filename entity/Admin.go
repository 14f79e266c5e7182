package entity

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash

	// TokenVersion is embedded in issued JWTs; bumping it on login/logout
	// revokes every previously issued token.
	TokenVersion uint `json:"-" gorm:"default:0"`
}
