package controllers

import (
	"net/http"
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// LegacyController serves the first frontend generation's routes. The shapes
// differ slightly from v1 (flat token, bare data arrays) and the session can
// arrive as a table_id in the body instead of a token.
type LegacyController struct {
	Cart       *services.CartService
	Menus      *services.MenuService
	Tables     *services.TableService
	Orders     *services.OrderService
	Auth       *services.AuthService
	JWTSecret  string
	SessionTTL time.Duration
}

func NewLegacyController(cart *services.CartService, menus *services.MenuService, tables *services.TableService, orders *services.OrderService, auth *services.AuthService, secret string, ttl time.Duration) *LegacyController {
	return &LegacyController{
		Cart:       cart,
		Menus:      menus,
		Tables:     tables,
		Orders:     orders,
		Auth:       auth,
		JWTSecret:  secret,
		SessionTTL: ttl,
	}
}

type legacySetTableRequest struct {
	TableID      uint   `json:"table_id" binding:"required"`
	CustomerName string `json:"customer_name"`
}

// SetTable : POST /api/table/set
func (ctl *LegacyController) SetTable(c *gin.Context) {
	var req legacySetTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "table_id", "Meja wajib diisi.")
		return
	}
	if req.CustomerName == "" {
		req.CustomerName = "Pelanggan"
	}

	table, err := ctl.Cart.StartSession(req.TableID)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := utils.GenerateSessionToken(table.ID, req.CustomerName, ctl.JWTSecret, ctl.SessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Meja dipilih",
		"session_token": token,
		"table":         gin.H{"id": table.ID, "name": table.Name},
	})
}

// ListTables : GET /api/table/list
func (ctl *LegacyController) ListTables(c *gin.Context) {
	tables, err := ctl.Tables.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tables})
}

// ListMenus : GET /api/menu
func (ctl *LegacyController) ListMenus(c *gin.Context) {
	menus, err := ctl.Menus.List(repository.MenuFilter{
		Category: entity.MenuCategory(c.Query("category")),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": menus})
}

// CartList : GET /api/cart — requires the session context from the optional
// middleware; without it the legacy frontend gets the pick-a-table error.
func (ctl *LegacyController) CartList(c *gin.Context) {
	tableID := utils.CurrentTableID(c)
	if tableID == 0 {
		resp.ValidationError(c, "session", "Session tidak ditemukan. Silakan pilih meja terlebih dahulu.")
		return
	}
	lines, total, err := ctl.Cart.List(tableID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lines, "total": total})
}

type legacyAddCartRequest struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// CartAdd : POST /api/cart/add
func (ctl *LegacyController) CartAdd(c *gin.Context) {
	tableID := utils.CurrentTableID(c)
	if tableID == 0 {
		resp.ValidationError(c, "session", "Session tidak ditemukan. Silakan pilih meja terlebih dahulu.")
		return
	}

	var req legacyAddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "menu_id", "Menu wajib diisi.")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	line, err := ctl.Cart.Add(tableID, req.MenuID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu ditambahkan ke keranjang", "data": line})
}

// Login : POST /api/admin/login — the flat token shape the old admin app reads.
func (ctl *LegacyController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "username", "Username dan password wajib diisi.")
		return
	}
	token, admin, err := ctl.Auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"username": admin.Username,
	})
}

// AllOrders : GET /api/admin/orders/all — unpaginated dump the old dashboard
// polls.
func (ctl *LegacyController) AllOrders(c *gin.Context) {
	orders, _, err := ctl.Orders.List(repository.OrderFilter{
		Status: entity.OrderStatus(c.Query("status")),
		Date:   c.Query("date"),
	}, 1, 1000)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": FormatOrders(orders)})
}
