package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConvertApp() *fiber.App {
	app := fiber.New()
	handler := NewConvertHandler(zap.NewNop())
	app.Post("/convert", handler.Convert)
	return app
}

func TestConvert(t *testing.T) {
	body := `[
		{"date":"2023-12-01","type":"credit","description":"SALARY","amount":"5000.00"},
		{"date":"2023-12-02","type":"debit","description":"GROCERY STORE","amount":120.50}
	]`

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newConvertApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	want := "date,type,description,amount\n" +
		"2023-12-01,credit,SALARY,5000.00\n" +
		"2023-12-02,debit,GROCERY STORE,120.50\n"
	assert.Equal(t, want, string(data))
}

func TestConvert_RejectsNonArray(t *testing.T) {
	req := httptest.NewRequest("POST", "/convert", strings.NewReader(`{"date":"2023-12-01"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newConvertApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
