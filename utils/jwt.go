package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the JWT claims for staff tokens. TokenVersion must match the
// admin row at verification time, so bumping the column revokes old tokens.
type AdminClaims struct {
	AdminID      uint   `json:"adminId"`
	Username     string `json:"username"`
	TokenVersion uint   `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// SessionClaims identify a customer session: which table the customer sat at
// and the name they gave. Cart and checkout calls read both from here instead
// of any server-side session state.
type SessionClaims struct {
	TableID      uint   `json:"tableId"`
	CustomerName string `json:"customerName"`
	jwt.RegisteredClaims
}

func GenerateAdminToken(adminID uint, username string, tokenVersion uint, secret string, ttl time.Duration) (string, error) {
	claims := &AdminClaims{
		AdminID:      adminID,
		Username:     username,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateSessionToken(tableID uint, customerName string, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		TableID:      tableID,
		CustomerName: customerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseAdminToken(tokenStr, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
