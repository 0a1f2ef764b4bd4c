// Package webapi wires the HTTP surface together: Fiber app construction,
// middleware and the per-domain route packages:
//   - account: account CRUD
//   - transaction: transaction recording and reversal
//   - dashboard: balance validation and the summary endpoint
package webapi

import (
	"github.com/bankdash/backend/pkg/app"
	accountweb "github.com/bankdash/backend/webapi/account"
	"github.com/bankdash/backend/webapi/common"
	dashboardweb "github.com/bankdash/backend/webapi/dashboard"
	transactionweb "github.com/bankdash/backend/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp builds the Fiber app with middleware and all routes registered.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			message := "Internal server error"
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
				if status < fiber.StatusInternalServerError {
					message = e.Message
				}
			}
			return common.ErrorJSON(c, status, message)
		},
	})

	// The dashboard frontend is served from another origin.
	fiberApp.Use(cors.New())
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "Too many requests")
		},
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Banking Dashboard API is running")
	})

	accountweb.Routes(fiberApp, a.LedgerService)
	transactionweb.Routes(fiberApp, a.LedgerService)
	dashboardweb.Routes(fiberApp, a.LedgerService, a.DashboardService)

	return fiberApp
}
