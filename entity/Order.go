package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus values are the stable wire codes. The Indonesian labels the
// frontends display live in Label() and never appear in the status column.
type OrderStatus string

const (
	StatusAwaitingPayment OrderStatus = "AwaitingPayment"
	StatusPreparing       OrderStatus = "Preparing"
	StatusDone            OrderStatus = "Done"
	StatusCancelled       OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusAwaitingPayment, StatusPreparing, StatusDone, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusAwaitingPayment:
		return "Menunggu Pembayaran"
	case StatusPreparing:
		return "Sedang Disiapkan"
	case StatusDone:
		return "Selesai"
	case StatusCancelled:
		return "Dibatalkan"
	}
	return string(s)
}

// Terminal reports whether no transition may leave this status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

type PaymentType string

const (
	PaymentQRIS  PaymentType = "qris"
	PaymentGopay PaymentType = "gopay"
	PaymentBCAVA PaymentType = "bca_va"
)

func (t PaymentType) Valid() bool {
	return t == PaymentQRIS || t == PaymentGopay || t == PaymentBCAVA
}

type Order struct {
	gorm.Model
	TableID uint  `json:"tableId" gorm:"not null;index"`
	Table   Table `json:"-"`

	CustomerName string          `json:"customerName" gorm:"not null"`
	TrackingCode string          `json:"trackingCode" gorm:"uniqueIndex;not null"`
	Total        decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status       OrderStatus     `json:"status" gorm:"type:varchar(24);default:AwaitingPayment;index"`

	PaymentTransactionID string      `json:"paymentTransactionId"`
	PaymentType          PaymentType `json:"paymentType" gorm:"type:varchar(16)"`
	PaymentQRURL         string      `json:"paymentQrUrl"`
	PaymentExpiresAt     *time.Time  `json:"paymentExpiresAt"`
	PaidAt               *time.Time  `json:"paidAt"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (o *Order) IsPaid() bool {
	return o.PaidAt != nil
}

func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusAwaitingPayment || o.Status == StatusPreparing
}

func (o *Order) IsPaymentExpired() bool {
	return o.PaymentExpiresAt != nil && time.Now().After(*o.PaymentExpiresAt)
}
