package middleware

import (
	"fmt"
	"strings"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	ClaimsContextKey = "claims"
	EmailContextKey  = "email"
)

// JWTAuth guards a route with a bearer token. A missing header is
// unauthorized; a present but unverifiable or expired token is forbidden.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperr.Unauthorized("unauthorized access")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return apperr.Forbidden("forbidden access")
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return apperr.Forbidden("forbidden access")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperr.Forbidden("forbidden access")
			}

			c.Set(ClaimsContextKey, claims)
			if email, ok := claims["email"].(string); ok {
				c.Set(EmailContextKey, email)
			}

			return next(c)
		}
	}
}
