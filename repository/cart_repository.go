package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListForTable returns the table's cart lines with their menus, oldest first.
// Takes the handle explicitly so checkout can read inside its transaction.
func (r *CartRepository) ListForTable(db *gorm.DB, tableID uint) ([]entity.Cart, error) {
	var lines []entity.Cart
	err := db.Preload("Menu").
		Where("table_id = ?", tableID).
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

// Upsert adds quantity to an existing (table, menu) line or inserts a new one.
// Runs inside the caller's transaction; the unique index on (table_id, menu_id)
// backstops a concurrent duplicate insert.
func (r *CartRepository) Upsert(tx *gorm.DB, tableID, menuID uint, quantity int) (*entity.Cart, error) {
	var line entity.Cart
	err := tx.Where("table_id = ? AND menu_id = ?", tableID, menuID).First(&line).Error
	if err == nil {
		line.Quantity += quantity
		if err := tx.Save(&line).Error; err != nil {
			return nil, err
		}
		return &line, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	line = entity.Cart{TableID: tableID, MenuID: menuID, Quantity: quantity}
	if err := tx.Create(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// FindLine loads one cart line, scoped to the table it must belong to.
func (r *CartRepository) FindLine(tableID, lineID uint) (*entity.Cart, error) {
	var line entity.Cart
	if err := r.DB.Preload("Menu").
		Where("id = ? AND table_id = ?", lineID, tableID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, tableID, lineID uint, quantity int) (int64, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND table_id = ?", lineID, tableID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, tableID, lineID uint) (int64, error) {
	res := tx.Where("id = ? AND table_id = ?", lineID, tableID).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}

// Clear deletes every line for the table and reports how many went. Clearing
// an empty cart is a no-op; checkout compares the count against its snapshot.
func (r *CartRepository) Clear(tx *gorm.DB, tableID uint) (int64, error) {
	res := tx.Where("table_id = ?", tableID).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}
