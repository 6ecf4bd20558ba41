package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

func TestRequestLogRecordsErrorStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), time.Second)
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("thing", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/things/42", nil))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	var status int64
	for _, field := range entries[0].Context {
		if field.Key == "status" {
			status = field.Integer
		}
	}
	require.EqualValues(t, 404, status)
}

func TestRequestLogRecordsSuccessStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), time.Second)
	app.Get("/things", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []string{}})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/things", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	var status int64
	for _, field := range entries[0].Context {
		if field.Key == "status" {
			status = field.Integer
		}
	}
	require.EqualValues(t, 200, status)
}
