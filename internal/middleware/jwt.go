package middleware

import (
	"net/http"

	"designmeta/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// AdminClaims are the token claims issued by the host admin session. The
// subject carries the caller's user id.
type AdminClaims struct {
	jwt.RegisteredClaims
}

// JWTConfig builds the echo-jwt configuration for the admin surface. On
// success the caller's user id is copied into the request context so
// handlers and capability checks can reach it without touching the token.
func JWTConfig(secret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(AdminClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*AdminClaims)
			if !ok {
				return
			}
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return
			}
			c.SetRequest(c.Request().WithContext(common.WithUserID(c.Request().Context(), userID)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}
}
