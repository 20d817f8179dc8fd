package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenValidity = 24 * time.Hour

type TokenService interface {
	Issue(user map[string]interface{}) (string, error)
}

type tokenServiceImpl struct {
	secret []byte
}

func NewTokenService(secret string) TokenService {
	return &tokenServiceImpl{
		secret: []byte(secret),
	}
}

// Issue signs the caller-supplied identity claims with a fixed one-day
// expiry. Claims are otherwise passed through untouched.
func (s *tokenServiceImpl) Issue(user map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range user {
		claims[key] = value
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(tokenValidity))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
