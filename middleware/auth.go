package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"EchoChat/pkg/config"
	tokenstore "EchoChat/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey = "current_user_id"
	ContextJTIKey    = "current_jti"
)

// parseToken validates the bearer token and returns the user id and jti.
func parseToken(c *gin.Context) (userID string, jti string, ok bool) {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return "", "", false
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", "", false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		// only accept HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}
	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return "", "", false
	}

	jtiVal, _ := claims["jti"].(string)
	if tokenstore.IsRevoked(jtiVal) {
		return "", "", false
	}

	if sub, ok := claims["sub"].(string); ok {
		userID = sub
	} else if subf, ok := claims["sub"].(float64); ok {
		// jwt lib may parse numeric as float64
		userID = strconv.Itoa(int(subf))
	}
	if userID == "" {
		return "", "", false
	}
	return userID, jtiVal, true
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, jti, ok := parseToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or missing token"})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextJTIKey, jti)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid token is present and lets
// the request through either way. Chat endpoints accept anonymous callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, jti, ok := parseToken(c); ok {
			c.Set(ContextUserIDKey, userID)
			c.Set(ContextJTIKey, jti)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated account id, or nil for
// anonymous requests.
func CurrentUserID(c *gin.Context) *uint {
	raw, ok := c.Get(ContextUserIDKey)
	if !ok {
		return nil
	}
	s, _ := raw.(string)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	uid := uint(n)
	return &uid
}
