package http

import (
	"fmt"
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ownerIDContextKey is the echo context key the middleware stores the
// authenticated owner ID under.
const ownerIDContextKey = "owner_id"

// accessClaims is the token payload issued by the identity service.
// Refresh tokens carry token_type "refresh" and are rejected here.
type accessClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates bearer access tokens and resolves the caller
// identity for the order endpoints.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a middleware validating HS256 access tokens.
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Handler returns the echo middleware function.
// A request without a valid access token gets 401 and never reaches the
// route handler.
func (m *AuthMiddleware) Handler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := m.authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or missing access token",
			})
		}

		c.Set(ownerIDContextKey, ownerID)
		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(header string) (kernel.UUID, error) {
	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return kernel.UUID{}, fmt.Errorf("malformed authorization header")
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	if !token.Valid {
		return kernel.UUID{}, fmt.Errorf("invalid token")
	}

	if claims.TokenType != "access" {
		return kernel.UUID{}, fmt.Errorf("token type %q is not an access token", claims.TokenType)
	}

	return kernel.UUIDFromString(claims.UserID)
}

// ownerIDFromContext returns the authenticated owner ID set by the
// middleware.
func ownerIDFromContext(c echo.Context) (kernel.UUID, bool) {
	ownerID, ok := c.Get(ownerIDContextKey).(kernel.UUID)
	return ownerID, ok
}
