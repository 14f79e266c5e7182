package services_test

import (
	"errors"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*fixture, *services.AuthService) {
	t.Helper()
	f := newFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := f.DB.Create(&entity.Admin{Username: "admin", Password: string(hash)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	auth := services.NewAuthService(repository.NewAdminRepository(f.DB), testSecret, time.Hour)
	return f, auth
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	_, auth := newAuthFixture(t)

	token, admin, err := auth.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin.Username != "admin" {
		t.Errorf("username = %q", admin.Username)
	}

	claims, err := utils.ParseAdminToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if _, err := auth.VerifyToken(claims); err != nil {
		t.Fatalf("verify token: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, auth := newAuthFixture(t)

	if _, _, err := auth.Login("admin", "salah"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login("nobody", "rahasia"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutRevokesOutstandingTokens(t *testing.T) {
	_, auth := newAuthFixture(t)

	token, admin, err := auth.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ParseAdminToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := auth.Logout(admin.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := auth.VerifyToken(claims); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("revoked token verified: err = %v", err)
	}
}

func TestReloginRevokesOldToken(t *testing.T) {
	_, auth := newAuthFixture(t)

	oldToken, _, err := auth.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, _, err := auth.Login("admin", "rahasia"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	oldClaims, err := utils.ParseAdminToken(oldToken, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := auth.VerifyToken(oldClaims); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("stale token verified: err = %v", err)
	}
}
