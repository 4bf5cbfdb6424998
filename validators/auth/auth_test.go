package authValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/t", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/t", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSignupValidator(t *testing.T) {
	app := testApp(Signup())

	cases := map[string]struct {
		body string
		want int
	}{
		"valid":            {`{"name": "Student One", "email": "s1@test.com", "password": "secret-pass"}`, fiber.StatusOK},
		"valid with phone": {`{"name": "Student One", "email": "s1@test.com", "mobile": "9876543210", "password": "secret-pass"}`, fiber.StatusOK},
		"empty password":   {`{"name": "Student One", "email": "s1@test.com", "password": ""}`, fiber.StatusUnprocessableEntity},
		"short password":   {`{"name": "Student One", "email": "s1@test.com", "password": "abc"}`, fiber.StatusUnprocessableEntity},
		"bad email":        {`{"name": "Student One", "email": "x", "password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
		"missing email":    {`{"name": "Student One", "password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
		"short name":       {`{"name": "ab", "email": "s1@test.com", "password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
		"bad mobile":       {`{"name": "Student One", "email": "s1@test.com", "mobile": "12", "password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, postJSON(t, app, tc.body))
		})
	}
}

func TestLoginValidator(t *testing.T) {
	app := testApp(Login())

	cases := map[string]struct {
		body string
		want int
	}{
		"valid":          {`{"email": "s1@test.com", "password": "secret-pass"}`, fiber.StatusOK},
		"empty password": {`{"email": "s1@test.com", "password": ""}`, fiber.StatusUnprocessableEntity},
		"blank password": {`{"email": "s1@test.com", "password": "   "}`, fiber.StatusUnprocessableEntity},
		"bad email":      {`{"email": "x", "password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
		"missing email":  {`{"password": "secret-pass"}`, fiber.StatusUnprocessableEntity},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, postJSON(t, app, tc.body))
		})
	}
}
