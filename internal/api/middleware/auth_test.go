package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"schoolgrid/backend/config"
	"schoolgrid/backend/pkg/jwt"
)

func newAuthRouter(jwtMgr *jwt.Manager, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(jwtMgr, nil)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleAuth(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(CtxUserID)})
	})
	r.GET("/protected", handlers...)
	return r
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-at-least-16-chars",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtMgr := testJWTManager()
	r := newAuthRouter(jwtMgr)

	token, err := jwtMgr.GenerateAccessToken(42, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := get(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(testJWTManager())

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if w := get(r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	jwtMgr := testJWTManager()
	r := newAuthRouter(jwtMgr)

	token, err := jwtMgr.GenerateRefreshToken(42, "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if w := get(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", w.Code, w.Body.String())
	}
}

func TestRoleAuth(t *testing.T) {
	jwtMgr := testJWTManager()
	r := newAuthRouter(jwtMgr, "super_admin")

	adminToken, err := jwtMgr.GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	superToken, err := jwtMgr.GenerateAccessToken(2, "super_admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if w := get(r, "Bearer "+adminToken); w.Code != http.StatusForbidden {
		t.Fatalf("admin status = %d, want 403", w.Code)
	}
	if w := get(r, "Bearer "+superToken); w.Code != http.StatusOK {
		t.Fatalf("super_admin status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
