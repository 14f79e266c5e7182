package utils_test

import (
	"testing"
	"time"

	"backend/utils"
)

const secret = "unit-test-secret"

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateAdminToken(7, "admin", 3, secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := utils.ParseAdminToken(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.AdminID != 7 || claims.Username != "admin" || claims.TokenVersion != 3 {
		t.Errorf("claims = %+v", claims)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateSessionToken(12, "Budi", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := utils.ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.TableID != 12 || claims.CustomerName != "Budi" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateSessionToken(12, "Budi", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := utils.ParseSessionToken(token, "other-secret"); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := utils.GenerateSessionToken(12, "Budi", secret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := utils.ParseSessionToken(token, secret); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestParseRejectsCrossTokenKinds(t *testing.T) {
	// a session token must not pass as an admin token: the claims differ and
	// admin middleware trusts AdminID
	session, err := utils.GenerateSessionToken(12, "Budi", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := utils.ParseAdminToken(session, secret)
	if err != nil {
		return
	}
	if claims.AdminID != 0 {
		t.Errorf("session token yielded admin id %d", claims.AdminID)
	}
}
