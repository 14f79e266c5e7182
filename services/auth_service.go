package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login verifies credentials and issues a fresh token. The token-version bump
// revokes every token issued before this login.
func (s *AuthService) Login(username, password string) (string, *entity.Admin, error) {
	username = strings.TrimSpace(username)
	admin, err := s.Repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	version, err := s.Repo.BumpTokenVersion(admin.ID)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Username, version, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Logout revokes the current token (and any other outstanding ones).
func (s *AuthService) Logout(adminID uint) error {
	_, err := s.Repo.BumpTokenVersion(adminID)
	return err
}

func (s *AuthService) Get(adminID uint) (*entity.Admin, error) {
	admin, err := s.Repo.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

// VerifyToken checks a parsed claim set against the stored token version.
func (s *AuthService) VerifyToken(claims *utils.AdminClaims) (*entity.Admin, error) {
	admin, err := s.Repo.FindByID(claims.AdminID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if admin.TokenVersion != claims.TokenVersion {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
