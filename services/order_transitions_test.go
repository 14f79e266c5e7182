package services_test

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/services"
)

func TestUpdateStatusLegalTransitions(t *testing.T) {
	cases := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
		ok   bool
	}{
		{"awaiting to preparing", entity.StatusAwaitingPayment, entity.StatusPreparing, true},
		{"awaiting to cancelled", entity.StatusAwaitingPayment, entity.StatusCancelled, true},
		{"awaiting to done", entity.StatusAwaitingPayment, entity.StatusDone, false},
		{"preparing to done", entity.StatusPreparing, entity.StatusDone, true},
		{"preparing to cancelled", entity.StatusPreparing, entity.StatusCancelled, true},
		{"preparing to awaiting", entity.StatusPreparing, entity.StatusAwaitingPayment, false},
		{"done is terminal", entity.StatusDone, entity.StatusCancelled, false},
		{"cancelled is terminal", entity.StatusCancelled, entity.StatusPreparing, false},
		{"done cannot revert", entity.StatusDone, entity.StatusPreparing, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			table := seedTable(t, f.DB, "Meja 1")
			menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
			order := f.checkout(t, table, menu, 1)

			if err := f.DB.Model(order).Update("status", tc.from).Error; err != nil {
				t.Fatalf("set initial status: %v", err)
			}

			_, err := f.Orders.UpdateStatus(order.ID, tc.to)
			if tc.ok {
				if err != nil {
					t.Fatalf("UpdateStatus(%s -> %s) = %v, want ok", tc.from, tc.to, err)
				}
				if got := f.reloadOrder(t, order.ID); got.Status != tc.to {
					t.Errorf("status = %s, want %s", got.Status, tc.to)
				}
			} else {
				if !errors.Is(err, services.ErrInvalidTransition) {
					t.Fatalf("UpdateStatus(%s -> %s) = %v, want ErrInvalidTransition", tc.from, tc.to, err)
				}
				if got := f.reloadOrder(t, order.ID); got.Status != tc.from {
					t.Errorf("status changed to %s on rejected transition", got.Status)
				}
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	order := f.checkout(t, table, menu, 1)

	if _, err := f.Orders.UpdateStatus(order.ID, "Shipped"); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusEmitsEvent(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	order := f.checkout(t, table, menu, 1)

	if _, err := f.Orders.UpdateStatus(order.ID, entity.StatusPreparing); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated := f.Recorder.Named("order.status.updated")
	if len(updated) != 2 {
		t.Fatalf("order.status.updated published %d times, want 2 (orders, table)", len(updated))
	}
	payload := updated[0].Event.Payload
	if payload["old_status"] != string(entity.StatusAwaitingPayment) || payload["new_status"] != string(entity.StatusPreparing) {
		t.Errorf("payload statuses = %v -> %v", payload["old_status"], payload["new_status"])
	}
}

func TestCancelRespectsCancellableStates(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	order := f.checkout(t, table, menu, 1)
	if _, err := f.Orders.Cancel(order.ID); err != nil {
		t.Fatalf("cancel awaiting order: %v", err)
	}
	if got := f.reloadOrder(t, order.ID); got.Status != entity.StatusCancelled {
		t.Errorf("status = %s, want Cancelled", got.Status)
	}

	done := f.checkout(t, table, menu, 1)
	if err := f.DB.Model(done).Update("status", entity.StatusDone).Error; err != nil {
		t.Fatalf("set done: %v", err)
	}
	if _, err := f.Orders.Cancel(done.ID); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("cancel done order err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)
	if _, err := f.Orders.UpdateStatus(42, entity.StatusPreparing); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
