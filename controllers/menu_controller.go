package controllers

import (
	"path/filepath"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct {
	Service   *services.MenuService
	UploadDir string
}

func NewMenuController(s *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{Service: s, UploadDir: uploadDir}
}

// ListPublic : GET /api/v1/menus?category=&search= — the customer catalog only
// ever shows what can actually be ordered.
func (ctl *MenuController) ListPublic(c *gin.Context) {
	f := repository.MenuFilter{
		Category: entity.MenuCategory(c.Query("category")),
		Status:   entity.MenuAvailable,
		Search:   c.Query("search"),
	}
	if f.Category != "" && !f.Category.Valid() {
		resp.ValidationError(c, "category", "Kategori tidak valid.")
		return
	}
	menus, err := ctl.Service.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, menus)
}

// Categories : GET /api/v1/menus/categories/list
func (ctl *MenuController) Categories(c *gin.Context) {
	resp.OK(c, []gin.H{
		{"value": entity.CategoryFood, "label": "Makanan"},
		{"value": entity.CategoryDrink, "label": "Minuman"},
		{"value": entity.CategoryIceCream, "label": "Es Krim"},
	})
}

// List : GET /api/v1/admin/menus?category=&status=&search=
func (ctl *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{
		Category: entity.MenuCategory(c.Query("category")),
		Status:   entity.MenuStatus(c.Query("status")),
		Search:   c.Query("search"),
	}
	if f.Category != "" && !f.Category.Valid() {
		resp.ValidationError(c, "category", "Kategori tidak valid.")
		return
	}
	if f.Status != "" && !f.Status.Valid() {
		resp.ValidationError(c, "status", "Status tidak valid.")
		return
	}

	menus, err := ctl.Service.List(f)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, menus)
}

// Get : GET /api/v1/menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	menu, err := ctl.Service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, menu)
}

// menuForm is the multipart form both Create and Update accept. The image part
// is optional; price comes in as a string so decimals survive intact.
type menuForm struct {
	Name        string `form:"name" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
	Status      string `form:"status"`
}

func (f *menuForm) validate(c *gin.Context) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil || price.IsNegative() {
		resp.ValidationError(c, "price", "Harga tidak valid.")
		return decimal.Zero, false
	}
	if !entity.MenuCategory(f.Category).Valid() {
		resp.ValidationError(c, "category", "Kategori tidak valid.")
		return decimal.Zero, false
	}
	if f.Status != "" && !entity.MenuStatus(f.Status).Valid() {
		resp.ValidationError(c, "status", "Status tidak valid.")
		return decimal.Zero, false
	}
	return price, true
}

// saveImage validates and stores the uploaded file, returning its relative
// path, or ok=false after writing the error response.
func (ctl *MenuController) saveImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no image part at all
		return "", true
	}
	if !services.ValidImageFile(fh) {
		resp.ValidationError(c, "image", "Gambar harus JPG/PNG dan maksimal 5MB.")
		return "", false
	}
	rel := ctl.Service.ImagePath(fh)
	if err := c.SaveUploadedFile(fh, filepath.Join(ctl.UploadDir, rel)); err != nil {
		respondError(c, err)
		return "", false
	}
	return rel, true
}

// Create : POST /api/v1/admin/menus (multipart)
func (ctl *MenuController) Create(c *gin.Context) {
	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		resp.ValidationError(c, "name", "Nama, harga, dan kategori wajib diisi.")
		return
	}
	price, ok := form.validate(c)
	if !ok {
		return
	}

	image, ok := ctl.saveImage(c)
	if !ok {
		return
	}

	status := entity.MenuStatus(form.Status)
	if status == "" {
		status = entity.MenuAvailable
	}

	menu := &entity.Menu{
		Name:        form.Name,
		Price:       price,
		Description: form.Description,
		Category:    entity.MenuCategory(form.Category),
		Image:       image,
		Status:      status,
	}
	if err := ctl.Service.Create(menu); err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "Menu berhasil dibuat", menu)
}

// Update : POST /api/v1/admin/menus/:id (multipart, method-spoofed PUT)
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	menu, err := ctl.Service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		resp.ValidationError(c, "name", "Nama, harga, dan kategori wajib diisi.")
		return
	}
	price, ok := form.validate(c)
	if !ok {
		return
	}

	menu.Name = form.Name
	menu.Price = price
	menu.Description = form.Description
	menu.Category = entity.MenuCategory(form.Category)
	if form.Status != "" {
		menu.Status = entity.MenuStatus(form.Status)
	}

	if image, ok := ctl.saveImage(c); !ok {
		return
	} else if image != "" {
		ctl.Service.ReplaceImage(menu, image)
	}

	if err := ctl.Service.Update(menu); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Menu berhasil diperbarui", menu)
}

type menuStatusRequest struct {
	Status entity.MenuStatus `json:"status" binding:"required"`
}

// UpdateStatus : PATCH /api/v1/admin/menus/:id/status — the quick
// Available/SoldOut toggle.
func (ctl *MenuController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}

	var req menuStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		resp.ValidationError(c, "status", "Status tidak valid.")
		return
	}

	menu, err := ctl.Service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	menu.Status = req.Status
	if err := ctl.Service.Update(menu); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Status menu diperbarui", menu)
}

// Delete : DELETE /api/v1/admin/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	if err := ctl.Service.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Menu berhasil dihapus", nil)
}
