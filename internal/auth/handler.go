package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trade-desk/trade_desk/internal/apperr"
	"github.com/trade-desk/trade_desk/internal/identity"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Login validates the request body, authenticates, and returns the token.
// DTO validation runs before any credential check.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("El cuerpo de la petición no es válido")
	}

	if msgs := req.validate(); len(msgs) > 0 {
		return apperr.Validation(strings.Join(msgs, "; "))
	}

	token, err := h.svc.Login(c.UserContext(), identity.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"token": token})
}
