package entity

import (
	"time"
)

// Cart is one staged line for a table: one row per (table, menu) pair.
// Adding the same menu again increments Quantity instead of duplicating.
// No DeletedAt: lines are removed for real, otherwise a soft-deleted row
// would keep occupying the (table, menu) unique index and block re-adding
// the menu after checkout.
type Cart struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TableID uint  `json:"tableId" gorm:"uniqueIndex:idx_cart_table_menu;not null"`
	Table   Table `json:"-"`

	MenuID uint `json:"menuId" gorm:"uniqueIndex:idx_cart_table_menu;not null"`
	Menu   Menu `json:"-"`

	Quantity int `json:"quantity" gorm:"not null"`
}
