package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Service: s}
}

// List : GET /api/v1/tables — public so customers can pick a seat.
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, tables)
}

// Get : GET /api/v1/tables/:id
func (ctl *TableController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	table, err := ctl.Service.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, table)
}

type tableRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create : POST /api/v1/admin/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "name", "Nama meja wajib diisi.")
		return
	}
	table, err := ctl.Service.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "Meja berhasil dibuat", table)
}

// Update : PUT /api/v1/admin/tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "name", "Nama meja wajib diisi.")
		return
	}
	table, err := ctl.Service.Update(uint(id), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Meja berhasil diperbarui", table)
}

// Delete : DELETE /api/v1/admin/tables/:id — refused while orders are active.
func (ctl *TableController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	if err := ctl.Service.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Meja berhasil dihapus", nil)
}
