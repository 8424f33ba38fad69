package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Account types carried in token claims.
const (
	AccountUser     = "user"
	AccountCustomer = "customer"
)

const issuer = "restro-api"

// Claims is the JWT payload for both staff users and customers.
type Claims struct {
	jwt.RegisteredClaims
	AccountID   uint   `json:"account_id"`
	AccountType string `json:"account_type"`
	Role        string `json:"role"`
}

// GenerateToken signs a token for the given account. The jti is a fresh
// uuid so tokens can be revoked individually through the token store.
func GenerateToken(secret string, accountID uint, accountType, role string, ttl time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
		AccountID:   accountID,
		AccountType: accountType,
		Role:        role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, claims, nil
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
