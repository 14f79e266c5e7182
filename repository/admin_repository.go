package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(username string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// BumpTokenVersion invalidates every token issued before now and returns the
// new version.
func (r *AdminRepository) BumpTokenVersion(id uint) (uint, error) {
	if err := r.DB.Model(&entity.Admin{}).Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1")).Error; err != nil {
		return 0, err
	}
	a, err := r.FindByID(id)
	if err != nil {
		return 0, err
	}
	return a.TokenVersion, nil
}
