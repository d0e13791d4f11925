package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's own account details with enrollment and
// completion counts.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var enrolledCount, completedCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", userID).Count(&enrolledCount)
	database.Database.Db.Model(&courseModels.LessonCompletion{}).Where("user_id = ?", userID).Count(&completedCount)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":                    user,
		"enrolled_courses_count":  enrolledCount,
		"completed_lessons_count": completedCount,
	})
}
