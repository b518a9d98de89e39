// internal/httpserver/auth.go
//
// Token auth for the compute-heavy simulation endpoint.
//   - POST /auth/token exchanges the admin password for a short-lived HS256
//     JWT. The password is checked against a bcrypt hash from the
//     ADMIN_PASSWORD_HASH env var (falling back to hashing ADMIN_PASSWORD,
//     dev default "letmein-dev").
//   - requireAuth enforces a valid bearer token on gated routes.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type tokenReq struct {
	Password string `json:"password"`
}
type tokenRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var (
	adminHashOnce sync.Once
	adminHash     []byte
)

// adminPasswordHash resolves the bcrypt hash the admin password is checked
// against, computing the dev fallback at most once.
func adminPasswordHash() []byte {
	adminHashOnce.Do(func() {
		if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
			adminHash = []byte(h)
			return
		}
		pw := getEnv("ADMIN_PASSWORD", "letmein-dev")
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err == nil {
			adminHash = h
		}
	})
	return adminHash
}

// handleToken verifies the admin password and issues a signed JWT.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var body tokenReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if bcrypt.CompareHashAndPassword(adminPasswordHash(), []byte(body.Password)) != nil {
		http.Error(w, `{"error":"invalid_password"}`, http.StatusUnauthorized)
		return
	}

	exp := time.Now().Add(12 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(jwtSecret()))
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(tokenRes{Token: ss, ExpiresAt: exp})
}

// requireAuth enforces a valid bearer JWT on gated routes.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret()), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts a token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

func jwtSecret() string { return getEnv("JWT_SECRET", "dev_secret_change_me") }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
