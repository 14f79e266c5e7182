package services_test

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/repository"
	"backend/services"
)

func TestValidImageFile(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		ok       bool
	}{
		{"jpg", "foto.jpg", 1024, true},
		{"jpeg uppercase", "FOTO.JPEG", 1024, true},
		{"png", "foto.png", 1024, true},
		{"gif rejected", "foto.gif", 1024, false},
		{"no extension", "foto", 1024, false},
		{"too large", "foto.jpg", 6 << 20, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tc.filename, Size: tc.size}
			if got := services.ValidImageFile(fh); got != tc.ok {
				t.Errorf("ValidImageFile(%q, %d) = %v, want %v", tc.filename, tc.size, got, tc.ok)
			}
		})
	}
}

func TestMenuDeleteRemovesImageFile(t *testing.T) {
	f := newFixture(t)
	uploadDir := t.TempDir()
	svc := services.NewMenuService(repository.NewMenuRepository(f.DB), uploadDir)

	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	rel := filepath.Join("menus", "nasi.jpg")
	full := filepath.Join(uploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte("jpg"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	if err := f.DB.Model(menu).Update("image", rel).Error; err != nil {
		t.Fatalf("set image: %v", err)
	}

	if err := svc.Delete(menu.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Errorf("image file still exists after delete")
	}
	if _, err := svc.Get(menu.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("menu still found after delete: %v", err)
	}
}

func TestMenuListFilters(t *testing.T) {
	f := newFixture(t)
	svc := services.NewMenuService(repository.NewMenuRepository(f.DB), t.TempDir())

	seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	soldOut := seedMenu(t, f.DB, "Mie Goreng", "22000", entity.MenuSoldOut)
	drink := &entity.Menu{Name: "Es Teh", Price: soldOut.Price, Category: entity.CategoryDrink, Status: entity.MenuAvailable}
	if err := f.DB.Create(drink).Error; err != nil {
		t.Fatalf("seed drink: %v", err)
	}

	available, err := svc.List(repository.MenuFilter{Status: entity.MenuAvailable})
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("available = %d, want 2", len(available))
	}

	drinks, err := svc.List(repository.MenuFilter{Category: entity.CategoryDrink})
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(drinks) != 1 || drinks[0].Name != "Es Teh" {
		t.Errorf("drinks = %+v", drinks)
	}

	goreng, err := svc.List(repository.MenuFilter{Search: "goreng"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(goreng) != 2 {
		t.Errorf("search goreng = %d, want 2", len(goreng))
	}
}

func TestReplaceImageDeletesOldFile(t *testing.T) {
	f := newFixture(t)
	uploadDir := t.TempDir()
	svc := services.NewMenuService(repository.NewMenuRepository(f.DB), uploadDir)

	menu := seedMenu(t, f.DB, "Nasi Goreng", "25000", entity.MenuAvailable)
	oldRel := filepath.Join("menus", "old.jpg")
	oldFull := filepath.Join(uploadDir, oldRel)
	if err := os.MkdirAll(filepath.Dir(oldFull), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(oldFull, []byte("jpg"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	menu.Image = oldRel

	svc.ReplaceImage(menu, filepath.Join("menus", "new.jpg"))

	if _, err := os.Stat(oldFull); !os.IsNotExist(err) {
		t.Errorf("old image still on disk")
	}
	if menu.Image != filepath.Join("menus", "new.jpg") {
		t.Errorf("image = %q", menu.Image)
	}
}
