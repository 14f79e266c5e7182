// Package events defines the order-lifecycle notifications and the publish
// interface they travel through. The order and payment services depend only on
// Publisher; the websocket hub is the production transport, tests record.
package events

import (
	"fmt"
	"time"

	"backend/entity"
)

const (
	// ChannelOrders is the public order-category channel.
	ChannelOrders = "orders"
	// ChannelAdmin carries creations and payments for staff dashboards.
	ChannelAdmin = "admin-orders"
)

// TableChannel is the private per-table channel name.
func TableChannel(tableID uint) string {
	return fmt.Sprintf("table.%d", tableID)
}

type Event struct {
	Name    string         `json:"event"`
	Payload map[string]any `json:"data"`
}

// Publisher delivers one event to one channel, at-most-once, best-effort.
// Subscribers that care about completeness poll as a fallback.
type Publisher interface {
	Publish(channel string, ev Event)
}

// OrderCreated is emitted after the checkout transaction commits. The order
// comes with its Table preloaded; table names are labels, not "Meja {id}".
func OrderCreated(o *entity.Order) Event {
	return Event{
		Name: "order.created",
		Payload: map[string]any{
			"order_id":      o.ID,
			"tracking_code": o.TrackingCode,
			"table_id":      o.TableID,
			"table_name":    o.Table.Name,
			"customer_name": o.CustomerName,
			"total":         o.Total.StringFixed(2),
			"status":        string(o.Status),
			"status_label":  o.Status.Label(),
			"created_at":    o.CreatedAt.Format(time.RFC3339),
			"message":       fmt.Sprintf("Pesanan baru dari %s (%s)", o.CustomerName, o.Table.Name),
		},
	}
}

// OrderStatusUpdated is emitted on every status transition.
func OrderStatusUpdated(o *entity.Order, oldStatus entity.OrderStatus) Event {
	return Event{
		Name: "order.status.updated",
		Payload: map[string]any{
			"order_id":      o.ID,
			"tracking_code": o.TrackingCode,
			"table_id":      o.TableID,
			"customer_name": o.CustomerName,
			"old_status":    string(oldStatus),
			"new_status":    string(o.Status),
			"status_label":  o.Status.Label(),
			"updated_at":    o.UpdatedAt.Format(time.RFC3339),
			"message":       statusMessage(o.Status),
		},
	}
}

// PaymentSuccess is emitted exactly once per order, when it first becomes paid.
func PaymentSuccess(o *entity.Order) Event {
	var paidAt any
	if o.PaidAt != nil {
		paidAt = o.PaidAt.Format(time.RFC3339)
	}
	return Event{
		Name: "payment.success",
		Payload: map[string]any{
			"order_id":       o.ID,
			"tracking_code":  o.TrackingCode,
			"table_id":       o.TableID,
			"customer_name":  o.CustomerName,
			"transaction_id": o.PaymentTransactionID,
			"payment_type":   string(o.PaymentType),
			"paid_at":        paidAt,
			"status":         string(o.Status),
			"status_label":   o.Status.Label(),
			"message":        fmt.Sprintf("Pembayaran berhasil untuk pesanan %s", o.TrackingCode),
		},
	}
}

func statusMessage(s entity.OrderStatus) string {
	switch s {
	case entity.StatusAwaitingPayment:
		return "Menunggu pembayaran"
	case entity.StatusPreparing:
		return "Pesanan sedang disiapkan"
	case entity.StatusDone:
		return "Pesanan telah selesai"
	case entity.StatusCancelled:
		return "Pesanan dibatalkan"
	}
	return "Status pesanan diperbarui"
}
