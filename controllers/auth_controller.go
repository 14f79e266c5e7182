package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login : POST /api/v1/admin/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, "username", "Username dan password wajib diisi.")
		return
	}

	token, admin, err := ctl.Service.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	resp.OKMessage(c, "Login berhasil", gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

// Logout : POST /api/v1/admin/logout — revokes every outstanding token.
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.Service.Logout(utils.CurrentAdminID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OKMessage(c, "Logout berhasil", nil)
}

// Me : GET /api/v1/admin/me
func (ctl *AuthController) Me(c *gin.Context) {
	admin, err := ctl.Service.Get(utils.CurrentAdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}
