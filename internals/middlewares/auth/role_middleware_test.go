package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"memoku_backend/internals/constants"
)

func newRoleTestApp(role string, allowed []string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/guarded", OnlyRolesSlice("khusus reviewer", allowed), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesSlice(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"role cocok", constants.RoleAmoRegion, constants.ReviewerRoles, fiber.StatusOK},
		{"role lain di daftar", constants.RoleCCH, constants.ReviewerRoles, fiber.StatusOK},
		{"role tidak cocok", constants.RoleAmoArea, constants.ReviewerRoles, fiber.StatusForbidden},
		{"hanya cch", constants.RoleMO, constants.CCHOnly, fiber.StatusForbidden},
		{"tanpa role", "", constants.ReviewerRoles, fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleTestApp(tc.role, tc.allowed)
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
