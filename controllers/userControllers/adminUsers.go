package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminListUsers lists all accounts with their enrollment and completion
// counts.
func AdminListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at asc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	type UserWithCounts struct {
		ID                    uint   `json:"id"`
		Name                  string `json:"name"`
		Email                 string `json:"email"`
		Role                  string `json:"role"`
		EnrolledCoursesCount  int64  `json:"enrolled_courses_count"`
		CompletedLessonsCount int64  `json:"completed_lessons_count"`
	}

	result := make([]UserWithCounts, len(users))
	for i, u := range users {
		var enrolledCount, completedCount int64
		database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", u.ID).Count(&enrolledCount)
		database.Database.Db.Model(&courseModels.LessonCompletion{}).Where("user_id = ?", u.ID).Count(&completedCount)
		result[i] = UserWithCounts{
			ID:                    u.ID,
			Name:                  u.Name,
			Email:                 u.Email,
			Role:                  u.Role,
			EnrolledCoursesCount:  enrolledCount,
			CompletedLessonsCount: completedCount,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"total_users": len(result),
		"users":       result,
	})
}

// AdminGetUserEnrollments lists the courses a given user is enrolled in.
func AdminGetUserEnrollments(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", targetUserID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courses := make([]courseModels.Course, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", e.CourseID).First(&course).Error; err == nil {
			courses = append(courses, course)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"enrolled_courses": courses,
	})
}

// AdminDeleteUser removes an account and its enrollments, completions and
// quiz attempts. Course headcounts are corrected in the same transaction.
func AdminDeleteUser(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var courseIDs []uint
		if err := tx.Model(&courseModels.Enrollment{}).Where("user_id = ?", targetUserID).Pluck("course_id", &courseIDs).Error; err != nil {
			return err
		}
		for _, id := range courseIDs {
			if err := tx.Model(&courseModels.Course{}).
				Where("id = ? AND enrolled_students > 0", id).
				UpdateColumn("enrolled_students", gorm.Expr("enrolled_students - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("user_id = ?", targetUserID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", targetUserID).Delete(&courseModels.LessonCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetUserID).Delete(&courseModels.QuizAttempt{}).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// AdminChangeRole updates a user's role.
func AdminChangeRole(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedChangeRole").(*struct {
		Role string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", reqData.Role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}
