package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem captures a cart line at checkout. Price is the menu price at that
// moment; later menu edits never touch it.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId" gorm:"not null;index"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId" gorm:"not null"`
	Menu   Menu `json:"-"`

	Quantity int             `json:"quantity" gorm:"not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Subtotal decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
}
