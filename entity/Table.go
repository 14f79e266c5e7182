package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	// hidden relations, preload only when needed
	Carts  []Cart  `json:"-"`
	Orders []Order `json:"-"`
}
