package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

type createPaymentRequest struct {
	PaymentType entity.PaymentType `json:"payment_type" binding:"required"`
}

// Create : POST /api/v1/orders/:id/payment — builds the gateway charge.
func (ctl *PaymentController) Create(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}

	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.PaymentType.Valid() {
		resp.ValidationError(c, "payment_type", "Metode pembayaran tidak valid.")
		return
	}

	session, err := ctl.Service.CreatePayment(uint(id), req.PaymentType)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "Pembayaran berhasil dibuat", session)
}

// Status : GET /api/v1/orders/:id/payment/status — gateway poll with local
// fallback.
func (ctl *PaymentController) Status(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Data tidak ditemukan")
		return
	}
	status, err := ctl.Service.CheckStatus(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, status)
}

// Webhook : POST /api/v1/payment/webhook — the gateway notification endpoint.
// Always 200 on handled notifications (including pending no-ops) so the
// gateway stops retrying; 403 only on a signature mismatch.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	var payload services.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, "Payload tidak valid.")
		return
	}

	if err := ctl.Service.HandleWebhook(&payload); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			resp.Forbidden(c, "Signature tidak valid.")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Order tidak ditemukan.")
		default:
			resp.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
}
