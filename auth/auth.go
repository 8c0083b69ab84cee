// quickmemo/auth/auth.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const TokenHeader = "X-Quickmemo-Token"

// Middleware rejects requests whose token header does not match password.
// An empty password disables the check.
func Middleware(password string) (fiber.Handler, error) {
	if password == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token == "" || bcrypt.CompareHashAndPassword(hash, []byte(token)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}, nil
}
