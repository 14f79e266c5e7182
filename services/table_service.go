package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

// TableView adds the active-order flag the admin screen shows.
type TableView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	HasActiveOrders bool   `json:"has_active_orders"`
}

func (s *TableService) List() ([]TableView, error) {
	tables, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]TableView, 0, len(tables))
	for _, t := range tables {
		active, err := s.Repo.HasActiveOrders(t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TableView{ID: t.ID, Name: t.Name, HasActiveOrders: active})
	}
	return out, nil
}

func (s *TableService) Get(id uint) (*TableView, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	active, err := s.Repo.HasActiveOrders(t.ID)
	if err != nil {
		return nil, err
	}
	return &TableView{ID: t.ID, Name: t.Name, HasActiveOrders: active}, nil
}

func (s *TableService) Create(name string) (*entity.Table, error) {
	name = strings.TrimSpace(name)
	taken, err := s.Repo.NameTaken(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}
	t := &entity.Table{Name: name}
	if err := s.Repo.Create(t); err != nil {
		// unique index backstops the check-then-insert race
		return nil, ErrDuplicateName
	}
	return t, nil
}

func (s *TableService) Update(id uint, name string) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	name = strings.TrimSpace(name)
	taken, err := s.Repo.NameTaken(name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}
	t.Name = name
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete refuses while the table still has orders in a non-terminal status.
func (s *TableService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	active, err := s.Repo.HasActiveOrders(id)
	if err != nil {
		return err
	}
	if active {
		return ErrTableHasActiveOrders
	}
	return s.Repo.Delete(id)
}
