package controllers

import (
	"errors"
	"log"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP + the localized copy
// both frontends show. Anything unmapped is a 500 with details in the log only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "Data tidak ditemukan")
	case errors.Is(err, services.ErrSessionRequired):
		resp.ValidationError(c, "session", "Session tidak ditemukan. Silakan pilih meja terlebih dahulu.")
	case errors.Is(err, services.ErrItemUnavailable):
		resp.ValidationError(c, "menu", "Menu tidak tersedia saat ini.")
	case errors.Is(err, services.ErrEmptyCart):
		resp.ValidationError(c, "cart", "Keranjang kosong. Tambahkan menu terlebih dahulu.")
	case errors.Is(err, services.ErrAlreadyPaid):
		resp.Conflict(c, "Order sudah dibayar.")
	case errors.Is(err, services.ErrOrderCancelled):
		resp.Conflict(c, "Order sudah dibatalkan.")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "Status order tidak valid untuk aksi ini.")
	case errors.Is(err, services.ErrPaymentNotCreated):
		resp.ValidationError(c, "payment", "Payment belum dibuat untuk order ini.")
	case errors.Is(err, services.ErrUpstream):
		resp.ValidationError(c, "payment", "Gagal membuat pembayaran. Silakan coba lagi.")
	case errors.Is(err, services.ErrTableHasActiveOrders):
		resp.Conflict(c, "Tidak dapat menghapus meja yang memiliki pesanan aktif.")
	case errors.Is(err, services.ErrDuplicateName):
		resp.Conflict(c, "Nama sudah digunakan.")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.ValidationError(c, "username", "Username atau password salah.")
	case errors.Is(err, services.ErrCodeGenerationExhausted),
		errors.Is(err, services.ErrOrderCreationFailed):
		log.Printf("checkout failed: %v", err)
		resp.ServerError(c)
	default:
		log.Printf("internal error: %v", err)
		resp.ServerError(c)
	}
}
