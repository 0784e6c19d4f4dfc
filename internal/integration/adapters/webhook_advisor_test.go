package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookAdvisor_RequestPlan(t *testing.T) {
	t.Run("prompt travels as query parameter", func(t *testing.T) {
		var gotPrompt string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPrompt = r.URL.Query().Get("prompt")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"output": "plan"}`))
		}))
		defer server.Close()

		advisor := NewWebhookAdvisor(server.URL)
		reply, err := advisor.RequestPlan(context.Background(), "ahorrar $5.000.000 en 10 meses")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotPrompt != "ahorrar $5.000.000 en 10 meses" {
			t.Errorf("unexpected prompt: %q", gotPrompt)
		}
		if reply["output"] != "plan" {
			t.Errorf("unexpected reply: %v", reply)
		}
	})

	t.Run("numbers decode as json.Number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"Cantidad mensual de ahorro requerida": 500000}`))
		}))
		defer server.Close()

		advisor := NewWebhookAdvisor(server.URL)
		reply, err := advisor.RequestPlan(context.Background(), "consulta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		value, ok := reply["Cantidad mensual de ahorro requerida"].(json.Number)
		if !ok {
			t.Fatalf("expected json.Number, got %T", reply["Cantidad mensual de ahorro requerida"])
		}
		if value.String() != "500000" {
			t.Errorf("expected 500000, got %s", value)
		}
	})

	t.Run("top-level array unwraps to first object", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"output": "primero"}, {"output": "segundo"}]`))
		}))
		defer server.Close()

		advisor := NewWebhookAdvisor(server.URL)
		reply, err := advisor.RequestPlan(context.Background(), "consulta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply["output"] != "primero" {
			t.Errorf("unexpected reply: %v", reply)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		advisor := NewWebhookAdvisor(server.URL)
		if _, err := advisor.RequestPlan(context.Background(), "consulta"); err == nil {
			t.Error("expected error for 502 response")
		}
	})

	t.Run("context deadline aborts the call", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		advisor := NewWebhookAdvisor(server.URL)
		if _, err := advisor.RequestPlan(ctx, "consulta"); err == nil {
			t.Error("expected timeout error")
		}
		<-started
	})

	t.Run("availability follows configuration", func(t *testing.T) {
		if NewWebhookAdvisor("").IsAvailable() {
			t.Error("empty URL must not be available")
		}
		if !NewWebhookAdvisor("http://localhost:5678/webhook").IsAvailable() {
			t.Error("configured URL must be available")
		}
	})
}
