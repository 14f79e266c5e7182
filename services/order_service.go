package services

import (
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/events"
	"backend/repository"
	"backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// trackingAttempts caps code generation; the 36^5 namespace makes exhaustion
// effectively a data problem, not a loop to hide in.
const trackingAttempts = 20

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	Publisher events.Publisher
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, pub events.Publisher) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Publisher: pub}
}

// Checkout snapshots the table's cart into an order. Cart read, order row,
// order items and cart deletion all happen in one transaction: two concurrent
// checkouts cannot both consume the same cart, and a line added mid-checkout
// rolls the whole thing back instead of vanishing.
func (s *OrderService) Checkout(tableID uint, customerName string) (*entity.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForTable(tx, tableID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Menu.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}

		code, err := s.generateTrackingCode(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			TableID:      tableID,
			CustomerName: customerName,
			TrackingCode: code,
			Total:        total,
			Status:       entity.StatusAwaitingPayment,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			item := entity.OrderItem{
				OrderID:  order.ID,
				MenuID:   l.MenuID,
				Quantity: l.Quantity,
				Price:    l.Menu.Price,
				Subtotal: l.Menu.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
		}

		cleared, err := s.CartRepo.Clear(tx, tableID)
		if err != nil {
			return err
		}
		if cleared != int64(len(lines)) {
			return fmt.Errorf("cart changed during checkout: snapshot %d lines, cleared %d", len(lines), cleared)
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrCodeGenerationExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	order, err := s.Repo.GetDetail(orderID)
	if err != nil {
		return nil, err
	}
	ev := events.OrderCreated(order)
	s.Publisher.Publish(events.ChannelOrders, ev)
	s.Publisher.Publish(events.ChannelAdmin, ev)
	s.Publisher.Publish(events.TableChannel(order.TableID), ev)
	return order, nil
}

func (s *OrderService) generateTrackingCode(tx *gorm.DB) (string, error) {
	for i := 0; i < trackingAttempts; i++ {
		code := utils.TrackingCode()
		exists, err := s.Repo.TrackingCodeExists(tx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}

// ---------------- Lookup ----------------

func (s *OrderService) GetDetail(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) GetByTrackingCode(code string) (*entity.Order, error) {
	o, err := s.Repo.GetByTrackingCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(f repository.OrderFilter, page, limit int) ([]entity.Order, int64, error) {
	return s.Repo.List(f, page, limit)
}

func (s *OrderService) ListActive() ([]entity.Order, error) {
	return s.Repo.ListActive()
}

func (s *OrderService) HistoryForTable(tableID uint) ([]entity.Order, error) {
	return s.Repo.ListForTable(tableID)
}

// ---------------- Expiry sweep ----------------

// CancelExpiredPayments cancels AwaitingPayment orders whose payment window
// closed before now. Each cancellation goes through the state machine and
// emits the usual status event.
func (s *OrderService) CancelExpiredPayments(now time.Time) (int, error) {
	expired, err := s.Repo.ListExpiredAwaitingPayment(now)
	if err != nil {
		return 0, err
	}
	cancelled := 0
	for i := range expired {
		if err := s.transition(&expired[i], entity.StatusCancelled); err != nil {
			// a concurrent webhook may have paid or cancelled it already
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}
