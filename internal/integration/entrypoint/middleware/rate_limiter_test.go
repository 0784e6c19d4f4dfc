package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/calculate", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/calculate", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimiterMiddleware(t *testing.T) {
	t.Run("rejects with 429 once the window is exhausted", func(t *testing.T) {
		t.Setenv("ENV", "production")

		rl := NewRateLimiterWithConfig(3, time.Minute)
		engine := newLimitedEngine(rl)

		for i := 0; i < 3; i++ {
			if got := doRequest(engine); got.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, got.Code)
			}
		}

		got := doRequest(engine)
		if got.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", got.Code)
		}
	})

	t.Run("skips limiting in the test environment", func(t *testing.T) {
		t.Setenv("ENV", "test")

		rl := NewRateLimiterWithConfig(1, time.Minute)
		engine := newLimitedEngine(rl)

		for i := 0; i < 5; i++ {
			if got := doRequest(engine); got.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, got.Code)
			}
		}
	})

	t.Run("reset releases a blocked client", func(t *testing.T) {
		t.Setenv("ENV", "production")

		rl := NewRateLimiterWithConfig(1, time.Minute)
		engine := newLimitedEngine(rl)

		if got := doRequest(engine); got.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", got.Code)
		}
		if got := doRequest(engine); got.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", got.Code)
		}

		rl.Reset()

		if got := doRequest(engine); got.Code != http.StatusOK {
			t.Fatalf("expected 200 after reset, got %d", got.Code)
		}
	})
}

func TestRateLimiterAllow(t *testing.T) {
	t.Run("window expiry restores the budget", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("client") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.allow("client") {
			t.Fatal("second attempt inside the window should be rejected")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.allow("client") {
			t.Fatal("attempt after the window should be allowed")
		}
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("a") {
			t.Fatal("first attempt for a should be allowed")
		}
		if rl.allow("a") {
			t.Fatal("second attempt for a should be rejected")
		}
		if !rl.allow("b") {
			t.Fatal("first attempt for b should be allowed")
		}
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		rl.allow("stale")
		time.Sleep(20 * time.Millisecond)
		rl.Cleanup()

		rl.mu.Lock()
		_, exists := rl.entries["stale"]
		rl.mu.Unlock()
		if exists {
			t.Fatal("expired entry should have been removed")
		}
	})
}
