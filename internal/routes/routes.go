package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/trade-desk/trade_desk/internal/auth"
	"github.com/trade-desk/trade_desk/internal/config"
	"github.com/trade-desk/trade_desk/internal/identity"
	"github.com/trade-desk/trade_desk/internal/middleware"
	"github.com/trade-desk/trade_desk/internal/operations"
)

// Deps aggregates shared dependencies required to wire routes. A nil DB
// selects the in-memory repositories, a nil Cache disables idempotency.
// Users and Ops may be pre-built (tests seed them); when nil they are
// derived from DB.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
	Users  identity.Repository
	Ops    operations.Repository
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	userRepo := d.Users
	opRepo := d.Ops
	if userRepo == nil {
		if d.DB != nil {
			userRepo = identity.NewPostgresRepository(d.DB)
		} else {
			userRepo = identity.NewMemoryRepository()
		}
	}
	if opRepo == nil {
		if d.DB != nil {
			opRepo = operations.NewPostgresRepository(d.DB)
		} else {
			opRepo = operations.NewMemoryRepository()
		}
	}

	identitySvc := identity.NewService(userRepo)
	authSvc := auth.NewService(identitySvc, d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	authHandler := auth.NewHandler(authSvc)
	opSvc := operations.NewService(opRepo)
	opHandler := operations.NewHandler(opSvc)

	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAuthRoutes(api, authHandler)

	jwtmw := middleware.JWTAuth([]byte(d.Cfg.JWTSecret))
	protected := api.Group("", jwtmw)
	if d.Cache != nil {
		protected.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	RegisterOperationRoutes(protected, opHandler)

	return nil
}
