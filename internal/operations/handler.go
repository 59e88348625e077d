package operations

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trade-desk/trade_desk/internal/apperr"
)

// Handler exposes operation HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds the operations HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create persists a new operation for the authenticated subject.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return apperr.Unauthorized("Usuario no autenticado", "Se requiere autenticación válida")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("El cuerpo de la petición no es válido")
	}

	if msgs := req.validate(); len(msgs) > 0 {
		return apperr.Validation(strings.Join(msgs, "; "))
	}

	op, err := h.svc.Create(c.UserContext(), req.toInput(), userID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(operationResponse{
		ID:        op.ID,
		Type:      string(op.Type),
		Amount:    op.Amount,
		Currency:  op.Currency,
		CreatedAt: op.CreatedAt.Format(time.RFC3339Nano),
	})
}
