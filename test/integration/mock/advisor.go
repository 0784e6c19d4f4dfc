package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// Advisor emulates the natural-language savings webhook. Each scenario
// configures the raw JSON body it should return; the prompts it receives
// are recorded for assertion.
type Advisor struct {
	mu       sync.Mutex
	server   *httptest.Server
	status   int
	body     string
	prompts []string
}

// NewAdvisor starts the webhook mock with a default empty JSON reply.
func NewAdvisor() *Advisor {
	a := &Advisor{
		status: http.StatusOK,
		body:   "{}",
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
	return a
}

func (a *Advisor) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.prompts = append(a.prompts, r.URL.Query().Get("prompt"))
	status, body := a.status, a.body
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// URL returns the webhook base URL.
func (a *Advisor) URL() string {
	return a.server.URL
}

// Reply configures the JSON body returned to the next requests.
func (a *Advisor) Reply(body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = http.StatusOK
	a.body = body
}

// Fail makes the webhook answer with the given HTTP status.
func (a *Advisor) Fail(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
}

// Prompts returns the prompts received so far.
func (a *Advisor) Prompts() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.prompts))
	copy(out, a.prompts)
	return out
}

// Reset clears recorded prompts and restores the default reply.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prompts = nil
	a.status = http.StatusOK
	a.body = "{}"
}

// Close shuts the mock server down.
func (a *Advisor) Close() {
	a.server.Close()
}
