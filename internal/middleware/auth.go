package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quanda-dev/quanda/internal/domain"
)

var (
	errNoToken       = errors.New("no token provided")
	errInvalidClaims = errors.New("invalid token claims")
)

// Key to store the caller's user id in the request context
type key int

const UserIdKey key = 0

// Auth resolves an inbound credential to a stable user id. Upstream issues
// the tokens; this layer only verifies and extracts.
type Auth struct {
	jwtKey []byte
}

func NewAuth(jwtKey string) *Auth {
	return &Auth{jwtKey: []byte(jwtKey)}
}

// NeedAuth returns middleware that rejects requests without a resolvable
// user id.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.resolveUserId(r)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveUserId extracts and validates the JWT from the request.
// Cookie first (browser clients), then Authorization header (API clients).
func (a *Auth) resolveUserId(r *http.Request) (domain.UserId, error) {
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return "", errNoToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errInvalidClaims
	}

	return sub, nil
}

// UserIdFromContext returns the id placed by NeedAuth.
func UserIdFromContext(ctx context.Context) (domain.UserId, bool) {
	userId, ok := ctx.Value(UserIdKey).(domain.UserId)
	return userId, ok
}
