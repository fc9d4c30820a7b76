package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(ErrorMiddleware())
	router.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return recorder
}

func TestErrorMiddlewareRendersAppError(t *testing.T) {
	recorder := serveWithError(ErrEmptyCart)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var body Error
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Message != ErrEmptyCart.Message {
		t.Fatalf("expected message %q, got %q", ErrEmptyCart.Message, body.Message)
	}
}

func TestErrorMiddlewareUnwrapsNestedAppError(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", ErrUnauthorized)
	recorder := serveWithError(wrapped)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestErrorMiddlewareHidesUnknownErrors(t *testing.T) {
	recorder := serveWithError(errors.New("mongo: connection reset"))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}

	var body Error
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Message != ErrInternalServer.Message {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
}

func TestErrorMiddlewarePassesCleanRequestsThrough(t *testing.T) {
	router := gin.New()
	router.Use(ErrorMiddleware())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}
