package middleware

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/presenters"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/jwt"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		BasicAuthMiddleware(userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware attributes the request to the user named by a bearer token
// issued at login. Routes stay reachable without a token (uploads and
// matchings accept anonymous callers), but a token that is presented must be
// valid or the request is rejected.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || token == authHeader {
			return c.Next()
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// BasicAuthMiddleware gates a route on username/password credentials checked
// against the user store. Unknown username and wrong password produce the
// same response.
func (m *middleware) BasicAuthMiddleware(userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		encoded := strings.TrimPrefix(authHeader, "Basic ")
		if authHeader == "" || encoded == authHeader {
			c.Set("WWW-Authenticate", `Basic realm="Restricted"`)
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
		}

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
		}

		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
		}

		authed, err := userService.Authenticate(c.Context(), username, password)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
		}

		c.Locals("user_id", fmt.Sprint(authed.ID))
		c.Locals("role", domain.RoleUser)
		return c.Next()
	}
}
