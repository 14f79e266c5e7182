package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{Service: s}
}

// Statistics : GET /api/v1/admin/dashboard/statistics
func (ctl *DashboardController) Statistics(c *gin.Context) {
	stats, err := ctl.Service.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stats)
}

const dateLayout = "2006-01-02"

// Revenue : GET /api/v1/admin/dashboard/revenue-report?start_date=&end_date=
// Defaults to the last 7 days.
func (ctl *DashboardController) Revenue(c *gin.Context) {
	end := c.Query("end_date")
	start := c.Query("start_date")
	if end == "" {
		end = time.Now().Format(dateLayout)
	}
	if start == "" {
		start = time.Now().AddDate(0, 0, -6).Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, start); err != nil {
		resp.ValidationError(c, "start_date", "Tanggal tidak valid.")
		return
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		resp.ValidationError(c, "end_date", "Tanggal tidak valid.")
		return
	}

	report, err := ctl.Service.RevenueReport(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, report)
}
