// Package testutils provides helpers for exercising the HTTP surface
// in-process.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	infraeventbus "github.com/bankdash/backend/infra/eventbus"
	"github.com/bankdash/backend/infra/repository/memory"
	"github.com/bankdash/backend/pkg/app"
	"github.com/bankdash/backend/pkg/config"
	"github.com/bankdash/backend/webapi"
	"github.com/gofiber/fiber/v2"
)

// TestConfig returns a configuration suitable for in-process tests: quiet
// logging and a rate limit high enough to stay out of the way.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 0},
		Log:       &config.Log{Format: "text"},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		EventBus:  &config.EventBus{Backend: "memory"},
		Demo:      &config.Demo{},
	}
}

// NewTestApp builds a full application on a fresh in-memory store and returns
// the Fiber app together with the underlying app wiring.
func NewTestApp() (*fiber.App, *app.App) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{
		Uow:    memory.New(),
		Bus:    infraeventbus.NewWithMemory(logger),
		Logger: logger,
	}
	a := app.New(deps, TestConfig())
	return webapi.SetupApp(a), a
}

// MakeRequest performs an in-process HTTP request against the app.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// DecodeEnvelope decodes a response body into the standard envelope shape.
func DecodeEnvelope(resp *http.Response) (success bool, message string, data any) {
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		panic(err)
	}
	return envelope.Success, envelope.Message, envelope.Data
}
