package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/apperror"
	"catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevelopmentApp(t *testing.T) *fiber.App {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	a := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(logger, true)})
	a.Use(recover.New())
	a.Get("/typed", func(c *fiber.Ctx) error { return apperror.NotFound("Product not found") })
	a.Get("/plain", func(c *fiber.Ctx) error { return errors.New("disk full") })
	a.Get("/panic", func(c *fiber.Ctx) error { panic("oops") })
	return a
}

func TestErrorHandler_DevelopmentStack(t *testing.T) {
	a := newDevelopmentApp(t)

	tests := []struct {
		path     string
		status   int
		stack    string
		contains string
	}{
		{path: "/typed", status: http.StatusNotFound, contains: "newDevelopmentApp"},
		{path: "/plain", status: http.StatusInternalServerError, stack: "InternalError: Internal Server Error: disk full"},
		{path: "/panic", status: http.StatusInternalServerError, stack: "InternalError: Internal Server Error: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := a.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode[handlers.ErrorResponse](t, resp)
			if tt.stack != "" {
				assert.Equal(t, tt.stack, body.Stack)
			}
			if tt.contains != "" {
				assert.Contains(t, body.Stack, tt.contains)
			}
			assert.NotContains(t, body.Stack, "ErrorHandler")
		})
	}
}
