package services

import (
	"backend/repository"

	"github.com/shopspring/decimal"
)

type DashboardService struct {
	Repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

type Statistics struct {
	TodayOrders    int64                    `json:"today_orders"`
	TodayRevenue   decimal.Decimal          `json:"today_revenue"`
	ActiveOrders   int64                    `json:"active_orders"`
	TotalRevenue   decimal.Decimal          `json:"total_revenue"`
	OrdersByStatus []repository.StatusCount `json:"orders_by_status"`
	TopMenus       []repository.TopMenu     `json:"top_menus"`
}

func (s *DashboardService) Statistics() (*Statistics, error) {
	todayOrders, err := s.Repo.CountToday()
	if err != nil {
		return nil, err
	}
	todayRevenue, err := s.Repo.TodayRevenue()
	if err != nil {
		return nil, err
	}
	active, err := s.Repo.CountActive()
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.Repo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Repo.TodayByStatus()
	if err != nil {
		return nil, err
	}
	topMenus, err := s.Repo.TopMenus(5)
	if err != nil {
		return nil, err
	}
	return &Statistics{
		TodayOrders:    todayOrders,
		TodayRevenue:   todayRevenue,
		ActiveOrders:   active,
		TotalRevenue:   totalRevenue,
		OrdersByStatus: byStatus,
		TopMenus:       topMenus,
	}, nil
}

type RevenueReport struct {
	StartDate         string                    `json:"start_date"`
	EndDate           string                    `json:"end_date"`
	TotalRevenue      decimal.Decimal           `json:"total_revenue"`
	TotalOrders       int64                     `json:"total_orders"`
	AverageOrderValue decimal.Decimal           `json:"average_order_value"`
	Daily             []repository.DailyRevenue `json:"daily_data"`
}

func (s *DashboardService) RevenueReport(start, end string) (*RevenueReport, error) {
	daily, err := s.Repo.RevenueByDate(start, end)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	var totalOrders int64
	for _, d := range daily {
		totalRevenue = totalRevenue.Add(d.Revenue)
		totalOrders += d.TotalOrders
	}
	avg := decimal.Zero
	if totalOrders > 0 {
		avg = totalRevenue.Div(decimal.NewFromInt(totalOrders)).Round(2)
	}

	return &RevenueReport{
		StartDate:         start,
		EndDate:           end,
		TotalRevenue:      totalRevenue,
		TotalOrders:       totalOrders,
		AverageOrderValue: avg,
		Daily:             daily,
	}, nil
}
