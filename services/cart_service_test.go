package services_test

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/services"
)

func TestCartAddMergesSameMenu(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	if _, err := f.Carts.Add(table.ID, menu.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	line, err := f.Carts.Add(table.ID, menu.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if line.Quantity != 5 {
		t.Errorf("quantity = %d, want 5 (merged)", line.Quantity)
	}

	lines, total, err := f.Carts.List(table.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if want := "125000"; total.String() != want {
		t.Errorf("total = %s, want %s", total, want)
	}
}

func TestCartAddRejectsSoldOut(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Es Teh", "8000", entity.MenuSoldOut)

	_, err := f.Carts.Add(table.ID, menu.ID, 1)
	if !errors.Is(err, services.ErrItemUnavailable) {
		t.Fatalf("err = %v, want ErrItemUnavailable", err)
	}
}

func TestCartAddUnknownMenu(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")

	_, err := f.Carts.Add(table.ID, 999, 1)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	line, err := f.Carts.Add(table.ID, menu.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.Carts.UpdateQuantity(table.ID, line.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}

	lines, _, err := f.Carts.List(table.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("len(lines) = %d, want 0", len(lines))
	}
}

func TestCartLinesAreTableScoped(t *testing.T) {
	f := newFixture(t)
	t1 := seedTable(t, f.DB, "Meja 1")
	t2 := seedTable(t, f.DB, "Meja 2")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	line, err := f.Carts.Add(t1.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// another table cannot touch the line
	if err := f.Carts.UpdateQuantity(t2.ID, line.ID, 4); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("cross-table update err = %v, want ErrNotFound", err)
	}
	if err := f.Carts.Remove(t2.ID, line.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("cross-table remove err = %v, want ErrNotFound", err)
	}

	lines, _, err := f.Carts.List(t1.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("owner's cart changed: %+v", lines)
	}
}

func TestCartClearIsIdempotent(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	if _, err := f.Carts.Add(table.ID, menu.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.Carts.Clear(table.ID); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := f.Carts.Clear(table.ID); err != nil {
		t.Fatalf("second clear on empty cart: %v", err)
	}
}

func TestCartReAddAfterCheckout(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	// first round: order the menu, checkout empties the cart
	f.checkout(t, table, menu, 2)

	// the table orders the same menu again
	line, err := f.Carts.Add(table.ID, menu.ID, 1)
	if err != nil {
		t.Fatalf("re-add after checkout: %v", err)
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1 (fresh line, not the old one)", line.Quantity)
	}
}

func TestCartReAddAfterRemoveAndClear(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	line, err := f.Carts.Add(table.ID, menu.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.Carts.Remove(table.ID, line.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := f.Carts.Add(table.ID, menu.ID, 1); err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}

	if err := f.Carts.Clear(table.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := f.Carts.Add(table.ID, menu.ID, 3); err != nil {
		t.Fatalf("re-add after clear: %v", err)
	}
}

func TestCartSubtotalFollowsMenuPrice(t *testing.T) {
	f := newFixture(t)
	table := seedTable(t, f.DB, "Meja 1")
	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)

	if _, err := f.Carts.Add(table.ID, menu.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	// price change before checkout shows up in the cart
	if err := f.DB.Model(menu).Update("price", "30000").Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	_, total, err := f.Carts.List(table.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := "60000"; total.String() != want {
		t.Errorf("total = %s, want %s (live price)", total, want)
	}
}

func TestStartSessionUnknownTable(t *testing.T) {
	f := newFixture(t)
	if _, err := f.Carts.StartSession(42); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
