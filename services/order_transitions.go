package services

import (
	"errors"

	"backend/entity"
	"backend/events"

	"gorm.io/gorm"
)

// The one legality table for the order workflow. Terminal states have no
// outgoing edges; the old permissive "write any status" behavior is gone.
var legalTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusAwaitingPayment: {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing:       {entity.StatusDone, entity.StatusCancelled},
	entity.StatusDone:            {},
	entity.StatusCancelled:       {},
}

func canTransition(from, to entity.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus is the staff entry point (e.g. Preparing -> Done). The target
// must be a legal next state for the order's current status.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, ErrInvalidTransition
	}
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.transition(o, to); err != nil {
		return nil, err
	}
	return s.Repo.GetDetail(orderID)
}

// Cancel is legal from AwaitingPayment and Preparing only.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !o.CanBeCancelled() {
		return nil, ErrInvalidTransition
	}
	if err := s.transition(o, entity.StatusCancelled); err != nil {
		return nil, err
	}
	return s.Repo.GetDetail(orderID)
}

// transition applies one guarded status change and emits the status event.
// The compare-and-swap UPDATE makes concurrent writers lose cleanly: whoever
// misses the guard gets ErrInvalidTransition.
func (s *OrderService) transition(o *entity.Order, to entity.OrderStatus) error {
	from := o.Status
	if !canTransition(from, to) {
		return ErrInvalidTransition
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.Status = to
	ev := events.OrderStatusUpdated(o, from)
	s.Publisher.Publish(events.ChannelOrders, ev)
	s.Publisher.Publish(events.TableChannel(o.TableID), ev)
	return nil
}
