package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuCategory string

const (
	CategoryFood     MenuCategory = "Food"
	CategoryDrink    MenuCategory = "Drink"
	CategoryIceCream MenuCategory = "IceCream"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategoryIceCream:
		return true
	}
	return false
}

type MenuStatus string

const (
	MenuAvailable MenuStatus = "Available"
	MenuSoldOut   MenuStatus = "SoldOut"
)

func (s MenuStatus) Valid() bool {
	return s == MenuAvailable || s == MenuSoldOut
}

type Menu struct {
	gorm.Model
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description"`
	Category    MenuCategory    `json:"category" gorm:"type:varchar(16);index"`
	Image       string          `json:"image"` // relative path under the uploads dir, empty if none
	Status      MenuStatus      `json:"status" gorm:"type:varchar(16);default:Available"`

	Carts      []Cart      `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
