package handlers

import (
	"errors"

	"catalog/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler translates any error returned by a route into the error envelope.
// Stack traces are included only in development mode.
func ErrorHandler(logger logrus.FieldLogger, development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := toAppError(err)
		status := appErr.Status()

		entry := logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.OriginalURL(),
			"status": status,
			"kind":   appErr.Kind.String(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Warn("Request rejected")
		}

		resp := ErrorResponse{
			Success: false,
			Message: appErr.Message,
		}
		if appErr.Kind == apperror.KindValidation {
			resp.Errors = appErr.Errors
		}
		if development {
			resp.Stack = developmentStack(err, appErr)
		}
		return c.Status(status).JSON(resp)
	}
}

// developmentStack renders the frames captured where err was created. Errors
// that were not an *apperror.Error only carry their text, since frames captured
// in the translator would not point at the failure.
func developmentStack(err error, appErr *apperror.Error) string {
	var origin *apperror.Error
	if errors.As(err, &origin) {
		return origin.Stack()
	}
	return appErr.Error()
}

// toAppError maps Fiber's own errors by status code and wraps anything unknown
// as an internal error.
func toAppError(err error) *apperror.Error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return apperror.NotFound(fiberErr.Message)
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
			return apperror.MalformedPayload(fiberErr)
		case fiber.StatusUnauthorized:
			return apperror.Authentication(fiberErr.Message)
		case fiber.StatusForbidden:
			return apperror.Authorization(fiberErr.Message)
		default:
			return apperror.Internal("Internal Server Error", fiberErr)
		}
	}
	return apperror.From(err)
}
