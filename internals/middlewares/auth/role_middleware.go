package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice memungkinkan akses jika user memiliki salah satu dari role
// yang diizinkan. Role dibaca dari Locals "userRole" (diisi AuthMiddleware).
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized - Role not found",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if message == "" {
			message = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": message,
		})
	}
}

// OnlyRoles: shortcut variadic.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(message, roles)
}
