package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// Capability names one guarded operation class. Every protected route group
// attaches RequireCapability once at its boundary; handlers never check role
// strings themselves.
type Capability string

const (
	CapEnroll        Capability = "enroll"
	CapTrackProgress Capability = "track-progress"
	CapSubmitQuiz    Capability = "submit-quiz"
	CapManageCourses Capability = "manage-courses"
	CapManageUsers   Capability = "manage-users"
	CapViewAnalytics Capability = "view-analytics"
)

var roleCapabilities = map[string]map[Capability]bool{
	models.RoleStudent: {
		CapEnroll:        true,
		CapTrackProgress: true,
		CapSubmitQuiz:    true,
	},
	models.RoleInstructor: {
		CapEnroll:        true,
		CapTrackProgress: true,
		CapSubmitQuiz:    true,
	},
	models.RoleAdmin: {
		CapEnroll:        true,
		CapTrackProgress: true,
		CapSubmitQuiz:    true,
		CapManageCourses: true,
		CapManageUsers:   true,
		CapViewAnalytics: true,
	},
}

// RoleCan reports whether the given role holds the capability. Unknown roles
// hold nothing.
func RoleCan(role string, cap Capability) bool {
	return roleCapabilities[role][cap]
}

// RequireCapability rejects the request before any handler runs when the
// caller's role, as asserted by the verified token, lacks the capability.
// Must run after JWTMiddleware.
func RequireCapability(cap Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		if !RoleCan(role, cap) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}
