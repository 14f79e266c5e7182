package services

import (
	"log"
	"time"
)

// ExpirySweeper cancels AwaitingPayment orders whose payment window has
// closed. The expiry timestamp itself is advisory; this loop is what makes it
// real.
type ExpirySweeper struct {
	Orders   *OrderService
	Interval time.Duration
	stop     chan struct{}
}

func NewExpirySweeper(orders *OrderService, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{Orders: orders, Interval: interval, stop: make(chan struct{})}
}

// Run blocks until Stop; callers start it with `go`.
func (s *ExpirySweeper) Run() {
	if s.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.Orders.CancelExpiredPayments(time.Now())
			if err != nil {
				log.Printf("payment expiry sweep: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("payment expiry sweep cancelled %d orders", n)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *ExpirySweeper) Stop() {
	close(s.stop)
}
