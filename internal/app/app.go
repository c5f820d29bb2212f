// Package app assembles the stand-in POS API: database, repositories, handlers, middleware
// and the routes table mounted under /api/v1.
package app

import (
	"errors"
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/api/v1/middleware"
	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db"
	"github.com/restopos/pos-e2e/internal/db/repos"
	"github.com/restopos/pos-e2e/pkg/api/v1/handlers"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
)

// rateLimitedRoutes are the routes guarded by Options.RateLimit
var rateLimitedRoutes = []string{routes.Register, routes.CreateEstablishment}

// Options configures the stand-in
type Options struct {
	// DSN is the SQLite database; empty means a shared in-memory database
	DSN string
	// JWTSecret signs access and refresh tokens
	JWTSecret string
	// RateLimit is the allowed requests per second on register and establishment creation;
	// zero disables limiting
	RateLimit float64
	// RateBurst is the limiter burst
	RateBurst int
}

// App is a ready-to-serve stand-in API
type App struct {
	Fiber *fiber.App
	DB    *gorm.DB
}

// New opens the database and builds the fiber application
func New(opts Options) (*App, error) {
	issuer, err := auth.NewIssuer(opts.JWTSecret)
	if err != nil {
		return nil, err
	}
	database, err := db.New(db.Options{DSN: opts.DSN})
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})
	f.Use(middleware.Logger())

	if err := Register(f, handlers.NewAPIHandler(repos.New(database), issuer), issuer, opts); err != nil {
		_ = db.Close(database)
		return nil, err
	}
	return &App{Fiber: f, DB: database}, nil
}

// Register mounts every route of the routes table under /api/v1
func Register(f *fiber.App, api *handlers.APIHandler, issuer *auth.Issuer, opts Options) error {
	limited := make(map[string]fiber.Handler)
	for _, name := range rateLimitedRoutes {
		// Each route gets its own budget
		if limiter := middleware.NewLimiter(opts.RateLimit, opts.RateBurst); limiter != nil {
			limited[name] = middleware.RateLimit(limiter)
		}
	}

	v1 := f.Group(routes.APIv1Prefix)
	requireAuth := auth.RequireAuth(issuer)
	byName := api.Handlers()

	for _, r := range routes.All() {
		h, ok := byName[r.Name]
		if !ok {
			return fmt.Errorf("no handler for route %s", r.Name)
		}
		chain := make([]fiber.Handler, 0, 3)
		if l, ok := limited[r.Name]; ok {
			chain = append(chain, l)
		}
		if !handlers.IsPublic(r.Name) {
			chain = append(chain, requireAuth)
		}
		chain = append(chain, h)
		v1.Add(strings.ToUpper(r.Method), r.Path, chain...).Name(r.Name)
	}
	return nil
}

// Listen serves the application on addr until it fails
func (a *App) Listen(addr string) error {
	return a.Fiber.Listen(addr)
}

// Close shuts the server down and closes the database
func (a *App) Close() error {
	return errors.Join(a.Fiber.Shutdown(), db.Close(a.DB))
}
