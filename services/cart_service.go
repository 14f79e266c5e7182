package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, tr *repository.TableRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, TableRepo: tr}
}

// StartSession validates the table a customer picked. The controller mints the
// session token from the result; no table/customer state lives in the process.
func (s *CartService) StartSession(tableID uint) (*entity.Table, error) {
	table, err := s.TableRepo.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return table, nil
}

// CartLine is one staged line with its subtotal computed from the current menu
// price. Cart subtotals float with menu edits; only checkout snapshots prices.
type CartLine struct {
	ID       uint            `json:"id"`
	Menu     entity.Menu     `json:"menu"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) List(tableID uint) ([]CartLine, decimal.Decimal, error) {
	lines, err := s.CartRepo.ListForTable(s.DB, tableID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	out := make([]CartLine, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		subtotal := l.Menu.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(subtotal)
		out = append(out, CartLine{ID: l.ID, Menu: l.Menu, Quantity: l.Quantity, Subtotal: subtotal})
	}
	return out, total, nil
}

// Add upserts a line: same (table, menu) increments, new pair inserts.
func (s *CartService) Add(tableID, menuID uint, quantity int) (*CartLine, error) {
	menu, err := s.MenuRepo.FindByID(menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if menu.Status != entity.MenuAvailable {
		return nil, ErrItemUnavailable
	}

	var line *entity.Cart
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		line, err = s.CartRepo.Upsert(tx, tableID, menuID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	subtotal := menu.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	return &CartLine{ID: line.ID, Menu: *menu, Quantity: line.Quantity, Subtotal: subtotal}, nil
}

// UpdateQuantity overwrites the line's quantity; zero deletes it. Lines that
// do not belong to the table are not found.
func (s *CartService) UpdateQuantity(tableID, lineID uint, quantity int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var affected int64
		var err error
		if quantity == 0 {
			affected, err = s.CartRepo.RemoveLine(tx, tableID, lineID)
		} else {
			affected, err = s.CartRepo.UpdateQuantity(tx, tableID, lineID, quantity)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *CartService) Remove(tableID, lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveLine(tx, tableID, lineID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Clear is idempotent: an already empty cart clears successfully.
func (s *CartService) Clear(tableID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.Clear(tx, tableID)
		return err
	})
}
