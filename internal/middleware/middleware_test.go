package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diagnostico-tools/diagnostico_backend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	ValidToken   string
	ValidClaims  *auth.Claims
	ExpiredError bool
}

func (m *MockJWTService) GenerateAccessToken(userID, email, role string) (string, time.Time, error) {
	return m.ValidToken, time.Now().Add(time.Hour), nil
}

func (m *MockJWTService) GenerateRefreshToken(userID string) (string, error) {
	return "refresh-token", nil
}

func (m *MockJWTService) GenerateTokenPair(userID, email, role string) (*auth.TokenPair, error) {
	return &auth.TokenPair{
		AccessToken:  m.ValidToken,
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
		ExpiresIn:    3600,
	}, nil
}

func (m *MockJWTService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	if m.ExpiredError {
		return nil, auth.ErrTokenExpired
	}
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}
	if tokenString == m.ValidToken && m.ValidClaims != nil {
		return m.ValidClaims, nil
	}
	return nil, auth.ErrInvalidToken
}

func (m *MockJWTService) ValidateRefreshToken(tokenString string) (*auth.RefreshClaims, error) {
	return nil, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockJWT := &MockJWTService{
		ValidToken: "valid-token",
		ValidClaims: &auth.Claims{
			UserID: primitive.NewObjectID().Hex(),
			Email:  "admin@example.com",
			Role:   "ADMIN",
		},
	}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := gin.New()
	router.Use(AuthMiddleware(&MockJWTService{}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	router := gin.New()
	router.Use(AuthMiddleware(&MockJWTService{ValidToken: "valid-token"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Token valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := gin.New()
	router.Use(AuthMiddleware(&MockJWTService{ExpiredError: true}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedCode int
	}{
		{"admin allowed", "ADMIN", http.StatusOK},
		{"editor rejected", "EDITOR", http.StatusForbidden},
		{"lowercase admin allowed", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Set(ContextKeyRole, tt.role)
			})
			router.Use(RequireAdmin())
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d", tt.expectedCode, w.Code)
			}
		})
	}
}

func TestRequireRole_NoRoleInContext(t *testing.T) {
	router := gin.New()
	router.Use(RequireAdmin())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		if GetRequestID(c) == "" {
			t.Error("Expected request ID in context")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID response header")
	}
}

func TestRequestID_Propagated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("Expected propagated request ID, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != 204 {
		t.Errorf("Expected status 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected allowed origin header, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no allow-origin header for disallowed origin, got %q", got)
	}
}
