package courseRoutes

import (
	controllers "lms/controllers/course"
	userControllers "lms/controllers/userControllers"
	"lms/middleware"
	validators "lms/validators/course"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin console routes. Capability checks sit
// on the groups; handlers never test roles themselves.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware)

	// Course management
	courseAdmin := adminGroup.Group("/course", middleware.RequireCapability(middleware.CapManageCourses))
	courseAdmin.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	courseAdmin.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	courseAdmin.Delete("/:id", validators.DeleteCourse(), controllers.DeleteCourse)
	courseAdmin.Post("/:id/lessons", validators.AddLesson(), controllers.AddLesson)
	courseAdmin.Put("/:id/lessons/:lesson_id", validators.UpdateLesson(), controllers.UpdateLesson)
	courseAdmin.Delete("/:id/lessons/:lesson_id", validators.DeleteLesson(), controllers.DeleteLesson)
	courseAdmin.Post("/:id/lessons/:lesson_id/quiz", validators.CreateQuiz(), controllers.CreateQuiz)

	// Analytics
	statsAdmin := adminGroup.Group("/", middleware.RequireCapability(middleware.CapViewAnalytics))
	statsAdmin.Get("/dashboard-stats", controllers.AdminDashboardStats)
	statsAdmin.Get("/analytics", controllers.AdminGetAnalytics)
	statsAdmin.Get("/stats-history", controllers.AdminGetStatsHistory)

	// User management
	userAdmin := adminGroup.Group("/users", middleware.RequireCapability(middleware.CapManageUsers))
	userAdmin.Get("/", userControllers.AdminListUsers)
	userAdmin.Get("/:id/enrolled-courses", userValidators.UserID(), userControllers.AdminGetUserEnrollments)
	userAdmin.Delete("/:id", userValidators.UserID(), userControllers.AdminDeleteUser)
	userAdmin.Put("/:id/role", userValidators.ChangeRole(), userControllers.AdminChangeRole)
}
