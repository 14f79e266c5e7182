package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// Checkout : POST /api/v1/orders — turns the session's cart into an order.
func (ctl *OrderController) Checkout(c *gin.Context) {
	order, err := ctl.Service.Checkout(utils.CurrentTableID(c), utils.CurrentCustomerName(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "Order berhasil dibuat", FormatOrder(order))
}

// Track : GET /api/v1/orders/tracking/:code — public tracking by code, no
// session.
func (ctl *OrderController) Track(c *gin.Context) {
	order, err := ctl.Service.GetByTrackingCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, FormatOrder(order))
}

// History : GET /api/v1/orders/history/table — the session table's past orders.
func (ctl *OrderController) History(c *gin.Context) {
	orders, err := ctl.Service.HistoryForTable(utils.CurrentTableID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, FormatOrders(orders))
}

// CancelOwn : POST /api/v1/orders/:id/cancel — customers may cancel their own
// table's orders while still cancellable.
func (ctl *OrderController) CancelOwn(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	order, err := ctl.Service.GetDetail(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.TableID != utils.CurrentTableID(c) {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}

	order, err = ctl.Service.Cancel(order.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Order dibatalkan", FormatOrder(order))
}

// List : GET /api/v1/admin/orders?status=&date=&table_id=&page=&limit=
func (ctl *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: entity.OrderStatus(c.Query("status")),
		Date:   c.Query("date"),
	}
	if f.Status != "" && !f.Status.Valid() {
		resp.ValidationError(c, "status", "Status tidak valid.")
		return
	}
	if v := c.Query("table_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.ValidationError(c, "table_id", "Meja tidak valid.")
			return
		}
		f.TableID = uint(id)
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := ctl.Service.List(f, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders": FormatOrders(orders),
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// Active : GET /api/v1/admin/orders/active — the kitchen display feed.
func (ctl *OrderController) Active(c *gin.Context) {
	orders, err := ctl.Service.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, FormatOrders(orders))
}

// Get : GET /api/v1/admin/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	order, err := ctl.Service.GetDetail(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, FormatOrder(order))
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus : PUT /api/v1/admin/orders/:id/status — only legal workflow
// transitions go through; anything else is a 409.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		resp.ValidationError(c, "status", "Status tidak valid.")
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Status order diperbarui", FormatOrder(order))
}

// Cancel : POST /api/v1/admin/orders/:id/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	order, err := ctl.Service.Cancel(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Order dibatalkan", FormatOrder(order))
}
