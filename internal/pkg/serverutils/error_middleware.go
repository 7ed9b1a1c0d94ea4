package serverutils

import (
	"errors"

	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the response
// envelope. NotFound and InvalidState are expected conversational branches
// and come back as 200 with the outcome message so the voice call never sees
// a transport failure; ValidationFailure is a 400; anything else is a 500
// with the detail kept out of the reply.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ae *apperror.AppError
		if errors.As(err, &ae) {
			switch ae.Kind {
			case apperror.KindNotFound, apperror.KindInvalidState:
				return ctx.Status(fiber.StatusOK).JSON(ErrorResponse(ae.Message))
			case apperror.KindValidationFailure:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(ae.Message))
			default:
				log.Error("Server", "Persistence failure", map[string]interface{}{
					"path":  ctx.Path(),
					"error": ae.Error(),
				})
				return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(ae.Message))
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message))
		}

		log.Error("Server", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Something went wrong. Please try again."))
	}
}
