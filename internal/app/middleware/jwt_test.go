package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/infrastructure/config"
)

func setupAuthTest(t *testing.T) (services.InterfaceJWTService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "test-secret"}
	InitAuthMiddleware(cfg, nil)

	r := gin.New()
	r.GET("/admin-only", AuthenticateSystemAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/partner", AuthenticatePartner(), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return services.NewJWTService(cfg, nil), r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	_, r := setupAuthTest(t)

	if w := doRequest(r, "/admin-only", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: got %d, want 401", w.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	_, r := setupAuthTest(t)

	if w := doRequest(r, "/partner", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", w.Code)
	}
}

func TestAdminRouteRejectsPartnerToken(t *testing.T) {
	jwtSvc, r := setupAuthTest(t)

	token, err := jwtSvc.GenerateToken(7, "partner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := doRequest(r, "/admin-only", token); w.Code != http.StatusForbidden {
		t.Errorf("partner on admin route: got %d, want 403", w.Code)
	}
}

func TestAdminRouteAcceptsAdminToken(t *testing.T) {
	jwtSvc, r := setupAuthTest(t)

	token, err := jwtSvc.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := doRequest(r, "/admin-only", token); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: got %d, want 200", w.Code)
	}
}

func TestPartnerRouteAcceptsAdminToken(t *testing.T) {
	jwtSvc, r := setupAuthTest(t)

	// 管理员可以访问合作方接口
	token, err := jwtSvc.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := doRequest(r, "/partner", token); w.Code != http.StatusOK {
		t.Errorf("admin on partner route: got %d, want 200", w.Code)
	}
}
