package middleware

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeUserService struct {
	username string
	password string
	userID   uint
}

func (f *fakeUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	return domain.RegisterResponse{}, nil
}

func (f *fakeUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	return domain.LoginResponse{}, nil
}

func (f *fakeUserService) Authenticate(ctx context.Context, username string, password string) (*entities.User, error) {
	if username != f.username || password != f.password {
		return nil, domain.ErrInvalidCredentials
	}
	u := &entities.User{Username: username}
	u.ID = f.userID
	return u, nil
}

func newBearerTestApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Use(NewMiddleware().AuthMiddleware(jwtService))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, authHeader string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

// -------- tests --------

func TestAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	app := newBearerTestApp(jwt.NewJWTService())

	resp, body := whoami(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"user_id":""`)
}

func TestAuthMiddleware_ValidTokenSetsUser(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newBearerTestApp(jwtService)

	token := jwtService.GenerateTokenUser("5", domain.RoleUser)
	resp, body := whoami(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"user_id":"5"`)
}

func TestAuthMiddleware_BadTokenRejected(t *testing.T) {
	app := newBearerTestApp(jwt.NewJWTService())

	resp, _ := whoami(t, app, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBasicAuthMiddleware(t *testing.T) {
	userService := &fakeUserService{username: "alice", password: "supersecret", userID: 9}
	app := fiber.New()
	app.Use(NewMiddleware().BasicAuthMiddleware(userService))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	creds := base64.StdEncoding.EncodeToString([]byte("alice:supersecret"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+creds)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bad := base64.StdEncoding.EncodeToString([]byte("alice:wrongpass"))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+bad)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
