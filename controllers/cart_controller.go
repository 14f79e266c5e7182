package controllers

import (
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Service    *services.CartService
	JWTSecret  string
	SessionTTL time.Duration
}

func NewCartController(s *services.CartService, secret string, ttl time.Duration) *CartController {
	return &CartController{Service: s, JWTSecret: secret, SessionTTL: ttl}
}

type startSessionRequest struct {
	TableID      uint   `json:"table_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
}

// StartSession : POST /api/v1/session — the "scan the QR at the table" step.
// The response token carries the table and customer name; every cart and
// checkout call presents it.
func (ctl *CartController) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "table_id", "Meja dan nama pelanggan wajib diisi.")
		return
	}

	table, err := ctl.Service.StartSession(req.TableID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateSessionToken(table.ID, req.CustomerName, ctl.JWTSecret, ctl.SessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	resp.OKMessage(c, "Session dimulai", gin.H{
		"session_token": token,
		"table": gin.H{
			"id":   table.ID,
			"name": table.Name,
		},
		"customer_name": req.CustomerName,
		"expires_at":    time.Now().Add(ctl.SessionTTL),
	})
}

// Session : GET /api/v1/session — echoes the resolved session for the frontend.
func (ctl *CartController) Session(c *gin.Context) {
	table, err := ctl.Service.StartSession(utils.CurrentTableID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"table": gin.H{
			"id":   table.ID,
			"name": table.Name,
		},
		"customer_name": utils.CurrentCustomerName(c),
	})
}

// List : GET /api/v1/cart
func (ctl *CartController) List(c *gin.Context) {
	lines, total, err := ctl.Service.List(utils.CurrentTableID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items": lines,
		"total": total,
	})
}

type addCartRequest struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// Add : POST /api/v1/cart — same menu twice merges into one line.
func (ctl *CartController) Add(c *gin.Context) {
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "quantity", "Menu dan jumlah wajib diisi.")
		return
	}

	line, err := ctl.Service.Add(utils.CurrentTableID(c), req.MenuID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "Menu ditambahkan ke keranjang", line)
}

type updateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// Update : PUT /api/v1/cart/:id — quantity 0 removes the line.
func (ctl *CartController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "quantity", "Jumlah tidak valid.")
		return
	}

	if err := ctl.Service.UpdateQuantity(utils.CurrentTableID(c), uint(id), *req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Keranjang diperbarui", nil)
}

// Remove : DELETE /api/v1/cart/:id
func (ctl *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	if err := ctl.Service.Remove(utils.CurrentTableID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Menu dihapus dari keranjang", nil)
}

// Clear : DELETE /api/v1/cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Service.Clear(utils.CurrentTableID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Keranjang dikosongkan", nil)
}
