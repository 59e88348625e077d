package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trade-desk/trade_desk/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	group := r.Group("/auth")
	group.Post("/login", h.Login)
}
