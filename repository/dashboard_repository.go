package repository

import (
	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) CountToday() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("DATE(created_at) = DATE('now', 'localtime')").
		Count(&cnt).Error
	return cnt, err
}

func (r *DashboardRepository) TodayRevenue() (decimal.Decimal, error) {
	return r.sumTotal(r.DB.Model(&entity.Order{}).
		Where("DATE(created_at) = DATE('now', 'localtime') AND paid_at IS NOT NULL"))
}

func (r *DashboardRepository) CountActive() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("status IN ?", []entity.OrderStatus{entity.StatusAwaitingPayment, entity.StatusPreparing}).
		Count(&cnt).Error
	return cnt, err
}

func (r *DashboardRepository) TotalRevenue() (decimal.Decimal, error) {
	return r.sumTotal(r.DB.Model(&entity.Order{}).Where("paid_at IS NOT NULL"))
}

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

func (r *DashboardRepository) TodayByStatus() ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) as count").
		Where("DATE(created_at) = DATE('now', 'localtime')").
		Group("status").
		Scan(&out).Error
	return out, err
}

type TopMenu struct {
	MenuID        uint                `json:"menu_id"`
	MenuName      string              `json:"menu_name"`
	Category      entity.MenuCategory `json:"category"`
	TotalQuantity int64               `json:"total_quantity"`
	TotalRevenue  decimal.Decimal     `json:"total_revenue"`
}

// TopMenus ranks menus by quantity sold across paid orders.
func (r *DashboardRepository) TopMenus(limit int) ([]TopMenu, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []TopMenu
	err := r.DB.Table("order_items AS oi").
		Select("oi.menu_id, m.name AS menu_name, m.category, SUM(oi.quantity) AS total_quantity, SUM(oi.price * oi.quantity) AS total_revenue").
		Joins("JOIN menus m ON m.id = oi.menu_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.paid_at IS NOT NULL").
		Group("oi.menu_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type DailyRevenue struct {
	Date        string          `json:"date"`
	TotalOrders int64           `json:"total_orders"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// RevenueByDate groups paid orders per calendar day in [start, end] inclusive.
func (r *DashboardRepository) RevenueByDate(start, end string) ([]DailyRevenue, error) {
	var out []DailyRevenue
	err := r.DB.Model(&entity.Order{}).
		Select("DATE(created_at) AS date, COUNT(*) AS total_orders, SUM(total) AS revenue").
		Where("DATE(created_at) BETWEEN ? AND ? AND paid_at IS NOT NULL", start, end).
		Group("date").
		Order("date").
		Scan(&out).Error
	return out, err
}

func (r *DashboardRepository) sumTotal(q *gorm.DB) (decimal.Decimal, error) {
	var row struct{ Sum decimal.Decimal }
	if err := q.Select("COALESCE(SUM(total), 0) AS sum").Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Sum, nil
}
