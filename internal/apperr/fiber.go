package apperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var statusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindAuth:       http.StatusUnauthorized,
	KindNotFound:   http.StatusNotFound,
	KindInternal:   http.StatusInternalServerError,
}

type errorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorHandler is the central Fiber error translator. Tagged errors map
// directly from kind to status; anything else is a 500 whose detail is
// logged server-side and never echoed to the client.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := As(err); ok {
			status, known := statusByKind[appErr.Kind]
			if !known {
				status = http.StatusInternalServerError
			}
			if appErr.Kind == KindInternal {
				logger.Error("internal error",
					slog.String("path", c.Path()),
					slog.Any("error", appErr.Unwrap()),
				)
			}
			return c.Status(status).JSON(errorBody{Error: appErr.Title, Message: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorBody{Error: fiberErr.Message})
		}

		logger.Error("unhandled error", slog.String("path", c.Path()), slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).JSON(errorBody{
			Error:   "Error interno del servidor",
			Message: "Ocurrió un error inesperado",
		})
	}
}
