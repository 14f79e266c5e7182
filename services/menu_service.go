package services

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

const maxImageSize = 5 << 20 // 5MB

type MenuService struct {
	Repo      *repository.MenuRepository
	UploadDir string
}

func NewMenuService(repo *repository.MenuRepository, uploadDir string) *MenuService {
	return &MenuService{Repo: repo, UploadDir: uploadDir}
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.Menu, error) {
	return s.Repo.List(f)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Create(m *entity.Menu) error {
	return s.Repo.Create(m)
}

func (s *MenuService) Update(m *entity.Menu) error {
	return s.Repo.Update(m)
}

// Delete removes the menu row and its stored image file.
func (s *MenuService) Delete(id uint) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.removeImage(m.Image)
	return nil
}

// ValidImageFile checks size and extension before anything touches disk.
func ValidImageFile(fh *multipart.FileHeader) bool {
	if fh.Size > maxImageSize {
		return false
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// ImagePath builds the relative storage path for a new upload.
func (s *MenuService) ImagePath(fh *multipart.FileHeader) string {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(fh.Filename)))
	return filepath.Join("menus", name)
}

// ReplaceImage swaps the stored image path, deleting the old file.
func (s *MenuService) ReplaceImage(m *entity.Menu, newPath string) {
	if m.Image != "" && m.Image != newPath {
		s.removeImage(m.Image)
	}
	m.Image = newPath
}

func (s *MenuService) removeImage(relPath string) {
	if relPath == "" {
		return
	}
	full := filepath.Join(s.UploadDir, relPath)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("remove menu image %s: %v", full, err)
	}
}
