package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompleteLesson records a lesson completion for the caller. The lesson must
// belong to a course the caller is enrolled in. Completing the same lesson
// twice is a no-op.
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	reqData, _ := c.Locals("validatedLessonComplete").(*struct {
		TimeSpentSec int `json:"time_spent_sec"`
	})
	timeSpent := 0
	if reqData != nil {
		timeSpent = reqData.TimeSpentSec
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
	}

	var existing courseModels.LessonCompletion
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already completed.", existing)
	}

	completion := courseModels.LessonCompletion{
		UserID:       userID,
		LessonID:     uint(lessonID),
		CourseID:     uint(courseID),
		TimeSpentSec: timeSpent,
	}

	if err := database.Database.Db.Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already completed.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson completion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", completion)
}

// GetCourseProgress returns the caller's progress for one enrolled course.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	lessonIDs, err := courseLessonIDs(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	completed, err := completedLessonIDs(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	completedSet := utils.CompletedSet(completed)
	progress := utils.CourseProgress(lessonIDs, completedSet)

	completedInCourse := 0
	for _, id := range lessonIDs {
		if _, ok := completedSet[id]; ok {
			completedInCourse++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"course_id":         courseID,
		"total_lessons":     len(lessonIDs),
		"completed_lessons": completedInCourse,
		"progress":          progress,
		"progress_percent":  utils.RoundPercent(progress),
	})
}

// GetDashboard returns the caller's learning dashboard: enrolled course
// count, per-course and overall progress, and accumulated learning time.
// Completions for courses the user has left are excluded from every figure
// except the raw completion count.
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	completed, err := completedLessonIDs(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}
	completedSet := utils.CompletedSet(completed)

	type CourseProgressEntry struct {
		CourseID         uint    `json:"course_id"`
		Title            string  `json:"title"`
		TotalLessons     int     `json:"total_lessons"`
		CompletedLessons int     `json:"completed_lessons"`
		Progress         float64 `json:"progress"`
		ProgressPercent  int     `json:"progress_percent"`
	}

	outlines := make([]utils.CourseOutline, 0, len(enrollments))
	perCourse := make([]CourseProgressEntry, 0, len(enrollments))

	for _, e := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", e.CourseID).First(&course).Error; err != nil {
			continue
		}

		lessonIDs, err := courseLessonIDs(e.CourseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
		}
		outlines = append(outlines, utils.CourseOutline{CourseID: e.CourseID, LessonIDs: lessonIDs})

		done := 0
		for _, id := range lessonIDs {
			if _, ok := completedSet[id]; ok {
				done++
			}
		}

		progress := utils.CourseProgress(lessonIDs, completedSet)
		perCourse = append(perCourse, CourseProgressEntry{
			CourseID:         e.CourseID,
			Title:            course.Title,
			TotalLessons:     len(lessonIDs),
			CompletedLessons: done,
			Progress:         progress,
			ProgressPercent:  utils.RoundPercent(progress),
		})
	}

	overall := utils.OverallProgress(outlines, completedSet)

	totalLessons := 0
	completedInEnrolled := 0
	for _, o := range outlines {
		totalLessons += len(o.LessonIDs)
		for _, id := range o.LessonIDs {
			if _, ok := completedSet[id]; ok {
				completedInEnrolled++
			}
		}
	}

	// Learning time only counts completions inside still-enrolled courses.
	var learningTimeSec int64
	database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND course_id IN (?)", userID,
			database.Database.Db.Model(&courseModels.Enrollment{}).Select("course_id").Where("user_id = ?", userID)).
		Select("COALESCE(SUM(time_spent_sec), 0)").Scan(&learningTimeSec)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"enrolled_courses":  len(enrollments),
		"total_lessons":     totalLessons,
		"completed_lessons": completedInEnrolled,
		"overall_progress":  overall,
		"overall_percent":   utils.RoundPercent(overall),
		"learning_time_sec": learningTimeSec,
		"courses":           perCourse,
	})
}

// courseLessonIDs loads the IDs of a course's live lessons.
func courseLessonIDs(courseID uint) ([]uint, error) {
	var ids []uint
	err := database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("sequence_order asc").
		Pluck("id", &ids).Error
	return ids, err
}

// completedLessonIDs loads every lesson the user has ever completed,
// including lessons of courses no longer enrolled.
func completedLessonIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ?", userID).
		Pluck("lesson_id", &ids).Error
	return ids, err
}
