package controllers

import (
	"backend/entity"

	"github.com/gin-gonic/gin"
)

// FormatOrder is the v1 order shape both frontends render. Items carry their
// snapshotted price, not the live menu price.
func FormatOrder(o *entity.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, gin.H{
			"id":       it.ID,
			"menu_id":  it.MenuID,
			"name":     it.Menu.Name,
			"image":    it.Menu.Image,
			"quantity": it.Quantity,
			"price":    it.Price,
			"subtotal": it.Subtotal,
		})
	}

	return gin.H{
		"id":            o.ID,
		"tracking_code": o.TrackingCode,
		"customer_name": o.CustomerName,
		"table": gin.H{
			"id":   o.TableID,
			"name": o.Table.Name,
		},
		"items":              items,
		"total":              o.Total,
		"status":             o.Status,
		"status_label":       o.Status.Label(),
		"payment_type":       o.PaymentType,
		"payment_expires_at": o.PaymentExpiresAt,
		"paid_at":            o.PaidAt,
		"is_paid":            o.IsPaid(),
		"can_be_cancelled":   o.CanBeCancelled(),
		"created_at":         o.CreatedAt,
		"updated_at":         o.UpdatedAt,
	}
}

func FormatOrders(orders []entity.Order) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, FormatOrder(&orders[i]))
	}
	return out
}
