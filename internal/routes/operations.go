package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trade-desk/trade_desk/internal/operations"
)

// RegisterOperationRoutes wires operation endpoints onto the protected group.
func RegisterOperationRoutes(r fiber.Router, h *operations.Handler) {
	r.Post("/operations", h.Create)
}
