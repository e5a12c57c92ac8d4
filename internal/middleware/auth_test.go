package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-jwt-key"

func signedToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func authHandler() (http.Handler, *string) {
	var gotUserId string
	a := NewAuth(testKey)
	h := a.NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, ok := UserIdFromContext(r.Context())
		if !ok {
			http.Error(w, "no user id in context", http.StatusInternalServerError)
			return
		}
		gotUserId = userId
		w.WriteHeader(http.StatusOK)
	}))
	return h, &gotUserId
}

func TestNeedAuth_BearerToken(t *testing.T) {
	h, gotUserId := authHandler()

	token := signedToken(t, testKey, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", *gotUserId)
}

func TestNeedAuth_Cookie(t *testing.T) {
	h, gotUserId := authHandler()

	token := signedToken(t, testKey, jwt.MapClaims{"sub": "user-2", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-2", *gotUserId)
}

func TestNeedAuth_Rejections(t *testing.T) {
	h, _ := authHandler()

	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"garbage token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-jwt")
		}},
		{"wrong key", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signedToken(t, "other-key", jwt.MapClaims{"sub": "user-1"}))
		}},
		{"expired token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signedToken(t, testKey, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}))
		}},
		{"missing sub", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signedToken(t, testKey, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.setup(req)
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
