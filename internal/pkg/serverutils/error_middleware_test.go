package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	return app
}

func TestErrorMiddlewareValidationFailureIs400(t *testing.T) {
	app := newTestApp()
	app.Get("/create", func(ctx *fiber.Ctx) error {
		return ValidateRequest(upsertForm{Title: ""})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/create", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestErrorMiddlewareKeepsFiberErrorCodes(t *testing.T) {
	app := newTestApp()
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "contact not found")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "campaign already sent")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/conflict", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestErrorMiddlewareUnknownErrorIs500(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
