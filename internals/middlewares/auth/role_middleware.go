package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice membatasi akses ke role tertentu.
// errMsg dipakai sebagai pesan 403 supaya jelas konteksnya.
func OnlyRolesSlice(errMsg string, allowed []string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}
