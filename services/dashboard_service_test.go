package services_test

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/services"
)

func markPaid(t *testing.T, f *fixture, order *entity.Order) {
	t.Helper()
	now := time.Now()
	if err := f.DB.Model(order).Updates(map[string]any{
		"paid_at": now,
		"status":  entity.StatusPreparing,
	}).Error; err != nil {
		t.Fatalf("mark paid: %v", err)
	}
}

func TestDashboardStatistics(t *testing.T) {
	f := newFixture(t)
	svc := services.NewDashboardService(repository.NewDashboardRepository(f.DB))
	table := seedTable(t, f.DB, "Meja 1")
	nasi := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	teh := seedMenu(t, f.DB, "Es Teh", "8000", entity.MenuAvailable)

	paid := f.checkout(t, table, nasi, 2)
	markPaid(t, f, paid)
	f.checkout(t, table, teh, 1) // unpaid, still awaiting

	stats, err := svc.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}

	if stats.TodayOrders != 2 {
		t.Errorf("today orders = %d, want 2", stats.TodayOrders)
	}
	// unpaid orders never count as revenue
	if want := "50000"; stats.TodayRevenue.String() != want {
		t.Errorf("today revenue = %s, want %s", stats.TodayRevenue, want)
	}
	if stats.ActiveOrders != 2 {
		t.Errorf("active orders = %d, want 2", stats.ActiveOrders)
	}
	if len(stats.TopMenus) != 1 || stats.TopMenus[0].MenuID != nasi.ID {
		t.Errorf("top menus = %+v, want only the paid menu", stats.TopMenus)
	}
	if stats.TopMenus[0].TotalQuantity != 2 {
		t.Errorf("top menu quantity = %d, want 2", stats.TopMenus[0].TotalQuantity)
	}
}

func TestDashboardRevenueReport(t *testing.T) {
	f := newFixture(t)
	svc := services.NewDashboardService(repository.NewDashboardRepository(f.DB))
	table := seedTable(t, f.DB, "Meja 1")
	nasi := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	first := f.checkout(t, table, nasi, 1)
	markPaid(t, f, first)
	second := f.checkout(t, table, nasi, 3)
	markPaid(t, f, second)
	f.checkout(t, table, nasi, 5) // unpaid

	today := time.Now().Format("2006-01-02")
	report, err := svc.RevenueReport(today, today)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2 (paid only)", report.TotalOrders)
	}
	if want := "100000"; report.TotalRevenue.String() != want {
		t.Errorf("total revenue = %s, want %s", report.TotalRevenue, want)
	}
	if want := "50000"; report.AverageOrderValue.String() != want {
		t.Errorf("average order value = %s, want %s", report.AverageOrderValue, want)
	}
	if len(report.Daily) != 1 || report.Daily[0].Date != today {
		t.Errorf("daily rows = %+v, want one row for %s", report.Daily, today)
	}
}

func TestDashboardRevenueReportEmptyRange(t *testing.T) {
	f := newFixture(t)
	svc := services.NewDashboardService(repository.NewDashboardRepository(f.DB))

	report, err := svc.RevenueReport("2020-01-01", "2020-01-07")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TotalOrders != 0 || !report.TotalRevenue.IsZero() || !report.AverageOrderValue.IsZero() {
		t.Errorf("empty range report = %+v, want zeros", report)
	}
}
