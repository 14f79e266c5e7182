package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetDetail loads the order with its items, menus and table for view shaping.
func (r *OrderRepository) GetDetail(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.Menu").Preload("Table").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByTrackingCode(code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.Menu").Preload("Table").
		Where("tracking_code = ?", code).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) TrackingCodeExists(tx *gorm.DB, code string) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Order{}).Where("tracking_code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// OrderFilter narrows List; zero values mean "no filter". Date is a calendar
// day ("2006-01-02").
type OrderFilter struct {
	Status     entity.OrderStatus
	Date       string
	TableID    uint
	ActiveOnly bool
}

func (r *OrderRepository) List(f OrderFilter, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		q = q.Where("DATE(created_at) = ?", f.Date)
	}
	if f.TableID != 0 {
		q = q.Where("table_id = ?", f.TableID)
	}
	if f.ActiveOnly {
		q = q.Where("status IN ?", []entity.OrderStatus{entity.StatusAwaitingPayment, entity.StatusPreparing})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("Items.Menu").Preload("Table").
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items.Menu").Preload("Table").
		Where("status IN ?", []entity.OrderStatus{entity.StatusAwaitingPayment, entity.StatusPreparing}).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForTable(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items.Menu").Preload("Table").
		Where("table_id = ?", tableID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ListExpiredAwaitingPayment returns unpaid orders whose payment window closed
// before now. The sweeper cancels them.
func (r *OrderRepository) ListExpiredAwaitingPayment(now time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("status = ? AND payment_expires_at IS NOT NULL AND payment_expires_at < ?",
			entity.StatusAwaitingPayment, now).
		Find(&orders).Error
	return orders, err
}

// ---------------- Guarded updates ----------------

// UpdateStatusGuard flips status only if the row is still in `from`. A zero
// RowsAffected means a concurrent writer got there first or the transition was
// stale — callers treat both as a conflict.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// MarkPaidGuard sets paid_at and moves the order to Preparing, only when it is
// still unpaid and awaiting payment. Idempotent under duplicate webhooks.
func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, orderID uint, paidAt time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND paid_at IS NULL AND status = ?", orderID, entity.StatusAwaitingPayment).
		Updates(map[string]any{
			"paid_at": paidAt,
			"status":  entity.StatusPreparing,
		})
	return res.RowsAffected, res.Error
}

// SavePaymentSession stores the gateway reference and expiry after a charge is
// created.
func (r *OrderRepository) SavePaymentSession(o *entity.Order) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", o.ID).
		Updates(map[string]any{
			"payment_transaction_id": o.PaymentTransactionID,
			"payment_type":           o.PaymentType,
			"payment_qr_url":         o.PaymentQRURL,
			"payment_expires_at":     o.PaymentExpiresAt,
		}).Error
}
