package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marierupasinghe/FreshEats/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokens *services.TokenService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := protectedRouter(services.NewTokenService("test-secret"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	router := protectedRouter(tokens)

	token, err := tokens.Generate("user-7", "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	router := protectedRouter(tokens)

	token, err := tokens.Generate("user-7", "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestAuthMiddlewareRejectsTamperedToken(t *testing.T) {
	issuer := services.NewTokenService("other-secret")
	router := protectedRouter(services.NewTokenService("test-secret"))

	token, err := issuer.Generate("user-7", "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}
