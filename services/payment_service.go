package services

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"backend/entity"
	"backend/events"
	"backend/pkg/gateway"
	"backend/repository"

	"gorm.io/gorm"
)

// paymentWindow is how long a created charge stays payable.
const paymentWindow = 15 * time.Minute

type PaymentService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Gateway   gateway.Gateway
	Publisher events.Publisher
	ServerKey string
}

func NewPaymentService(db *gorm.DB, orders *repository.OrderRepository, gw gateway.Gateway, pub events.Publisher, serverKey string) *PaymentService {
	return &PaymentService{DB: db, Orders: orders, Gateway: gw, Publisher: pub, ServerKey: serverKey}
}

// PaymentSession is what the customer needs to pay: a hosted payment page and
// the snap token, plus the expiry we committed to.
type PaymentSession struct {
	OrderID      uint               `json:"order_id"`
	TrackingCode string             `json:"tracking_code"`
	PaymentURL   string             `json:"payment_url"`
	SnapToken    string             `json:"snap_token"`
	PaymentType  entity.PaymentType `json:"payment_type"`
	Amount       string             `json:"amount"`
	ExpiresAt    time.Time          `json:"expires_at"`
}

// CreatePayment builds a gateway charge for the order. The gateway reference is
// trackingCode-unixTime so retried attempts for one order stay distinct.
func (s *PaymentService) CreatePayment(orderID uint, paymentType entity.PaymentType) (*PaymentSession, error) {
	order, err := s.Orders.GetDetail(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.IsPaid() {
		return nil, ErrAlreadyPaid
	}
	if order.Status == entity.StatusCancelled {
		return nil, ErrOrderCancelled
	}

	orderRef := fmt.Sprintf("%s-%d", order.TrackingCode, time.Now().Unix())

	items := make([]gateway.Item, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, gateway.Item{
			ID:    strconv.FormatUint(uint64(it.MenuID), 10),
			Name:  it.Menu.Name,
			Price: it.Price.IntPart(),
			Qty:   int32(it.Quantity),
		})
	}

	session, err := s.Gateway.CreateTransaction(&gateway.ChargeRequest{
		OrderRef:     orderRef,
		GrossAmount:  order.Total.IntPart(),
		CustomerName: order.CustomerName,
		PaymentType:  string(paymentType),
		Items:        items,
	})
	if err != nil {
		log.Printf("midtrans create transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	expiresAt := time.Now().Add(paymentWindow)
	order.PaymentTransactionID = orderRef
	order.PaymentType = paymentType
	order.PaymentExpiresAt = &expiresAt
	if paymentType == entity.PaymentQRIS {
		order.PaymentQRURL = session.RedirectURL
	}
	if err := s.Orders.SavePaymentSession(order); err != nil {
		return nil, err
	}

	return &PaymentSession{
		OrderID:      order.ID,
		TrackingCode: order.TrackingCode,
		PaymentURL:   session.RedirectURL,
		SnapToken:    session.Token,
		PaymentType:  paymentType,
		Amount:       order.Total.StringFixed(2),
		ExpiresAt:    expiresAt,
	}, nil
}

// WebhookPayload is the gateway notification body.
type WebhookPayload struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// HandleWebhook reconciles a gateway notification into order state. The
// signature is verified before anything else; a bad signature never reads or
// writes an order.
func (s *PaymentService) HandleWebhook(p *WebhookPayload) error {
	expected := webhookSignature(p.OrderID, p.StatusCode, p.GrossAmount, s.ServerKey)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(p.SignatureKey)) != 1 {
		log.Printf("webhook signature mismatch for %s", p.OrderID)
		return ErrInvalidSignature
	}

	// order_id is trackingCode-timestamp; drop the attempt suffix
	trackingCode := p.OrderID
	if i := strings.LastIndex(p.OrderID, "-"); i > 0 {
		trackingCode = p.OrderID[:i]
	}

	order, err := s.Orders.GetByTrackingCode(trackingCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("webhook for unknown tracking code %q", trackingCode)
			return ErrNotFound
		}
		return err
	}

	return s.reconcile(order, p.TransactionStatus, p.FraudStatus)
}

// reconcile maps one gateway transaction status onto the order workflow.
func (s *PaymentService) reconcile(order *entity.Order, transactionStatus, fraudStatus string) error {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return s.markPaid(order)
		}
	case "settlement":
		return s.markPaid(order)
	case "pending":
		// nothing to do, order stays AwaitingPayment
	case "deny", "expire", "cancel":
		if order.Status == entity.StatusAwaitingPayment {
			return s.transitionCancelled(order)
		}
	default:
		log.Printf("unhandled transaction status %q for order %d", transactionStatus, order.ID)
	}
	return nil
}

// markPaid is idempotent: the guarded UPDATE fires at most once per order, so
// duplicate webhook deliveries cannot double-emit payment.success.
func (s *PaymentService) markPaid(order *entity.Order) error {
	paidAt := time.Now()
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.Orders.MarkPaidGuard(tx, order.ID, paidAt)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		// already paid, or no longer awaiting payment
		return nil
	}

	oldStatus := order.Status
	order.Status = entity.StatusPreparing
	order.PaidAt = &paidAt
	log.Printf("order %d marked as paid", order.ID)

	statusEv := events.OrderStatusUpdated(order, oldStatus)
	s.Publisher.Publish(events.ChannelOrders, statusEv)
	s.Publisher.Publish(events.TableChannel(order.TableID), statusEv)

	payEv := events.PaymentSuccess(order)
	s.Publisher.Publish(events.ChannelAdmin, payEv)
	s.Publisher.Publish(events.TableChannel(order.TableID), payEv)
	return nil
}

// transitionCancelled publishes only after the transaction commits, so a
// rolled-back cancel never announces itself.
func (s *PaymentService) transitionCancelled(order *entity.Order) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.Orders.UpdateStatusGuard(tx, order.ID, entity.StatusAwaitingPayment, entity.StatusCancelled)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		// lost the race against a payment or another cancel; fine
		return nil
	}

	oldStatus := order.Status
	order.Status = entity.StatusCancelled
	ev := events.OrderStatusUpdated(order, oldStatus)
	s.Publisher.Publish(events.ChannelOrders, ev)
	s.Publisher.Publish(events.TableChannel(order.TableID), ev)
	return nil
}

// PaymentStatus is the checkStatus result. Degraded means the gateway was
// unreachable and only the local paid state is reported.
type PaymentStatus struct {
	OrderID           uint       `json:"order_id"`
	TrackingCode      string     `json:"tracking_code"`
	TransactionStatus string     `json:"transaction_status,omitempty"`
	PaymentType       string     `json:"payment_type,omitempty"`
	IsPaid            bool       `json:"is_paid"`
	PaidAt            *time.Time `json:"paid_at"`
	Degraded          bool       `json:"degraded,omitempty"`
}

// CheckStatus polls the gateway. Upstream failure degrades to the last known
// local state instead of failing the request; a successful poll is reconciled
// the same way a webhook would be, covering lost deliveries.
func (s *PaymentService) CheckStatus(orderID uint) (*PaymentStatus, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.PaymentTransactionID == "" {
		return nil, ErrPaymentNotCreated
	}

	status, fraudStatus, err := s.Gateway.CheckTransaction(order.PaymentTransactionID)
	if err != nil {
		log.Printf("check payment status failed for order %d: %v", order.ID, err)
		return &PaymentStatus{
			OrderID:      order.ID,
			TrackingCode: order.TrackingCode,
			IsPaid:       order.IsPaid(),
			PaidAt:       order.PaidAt,
			Degraded:     true,
		}, nil
	}

	if err := s.reconcile(order, status, fraudStatus); err != nil {
		return nil, err
	}

	return &PaymentStatus{
		OrderID:           order.ID,
		TrackingCode:      order.TrackingCode,
		TransactionStatus: status,
		PaymentType:       string(order.PaymentType),
		IsPaid:            order.IsPaid(),
		PaidAt:            order.PaidAt,
	}, nil
}

// webhookSignature is the gateway formula: sha512 hex over the concatenated
// order reference, status code, gross amount and server key.
func webhookSignature(orderRef, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderRef + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}
