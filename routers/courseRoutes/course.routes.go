package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and learner-facing routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog is public
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapEnroll), validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapEnroll), validators.UnenrollCourse(), controllers.UnenrollFromCourse)

	// Progress tracking
	courseGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapTrackProgress), validators.CompleteLesson(), controllers.CompleteLesson)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapTrackProgress), validators.GetCourseProgress(), controllers.GetCourseProgress)

	// Quizzes
	courseGroup.Get("/:course_id/lesson/:lesson_id/quiz", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapSubmitQuiz), validators.GetLessonQuiz(), controllers.GetLessonQuiz)

	quizGroup := app.Group("/quiz", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapSubmitQuiz))
	quizGroup.Post("/:id/submit", validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Learner dashboard
	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/enrollments", middleware.RequireCapability(middleware.CapEnroll), controllers.GetEnrollments)
	userGroup.Get("/dashboard", middleware.RequireCapability(middleware.CapTrackProgress), controllers.GetDashboard)
}
