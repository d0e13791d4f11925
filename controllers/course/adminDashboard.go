package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the headline numbers for the admin console:
// course and user totals, revenue at current prices, and the average
// headcount over courses that have at least one enrollment.
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, totalUsers int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	stats, err := utils.CollectCourseStats()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_courses":      totalCourses,
		"total_users":        totalUsers,
		"total_revenue":      utils.TotalRevenue(stats),
		"average_enrollment": utils.AverageEnrollment(stats),
	})
}

// AdminGetAnalytics returns the per-course rankings: headcount descending
// and revenue descending, ties in stable course order.
func AdminGetAnalytics(c *fiber.Ctx) error {
	stats, err := utils.CollectCourseStats()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	type RevenueEntry struct {
		CourseID uint    `json:"course_id"`
		Title    string  `json:"title"`
		Revenue  float64 `json:"revenue"`
	}

	byRevenue := utils.RankByRevenue(stats)
	revenueList := make([]RevenueEntry, len(byRevenue))
	for i, s := range byRevenue {
		revenueList[i] = RevenueEntry{CourseID: s.CourseID, Title: s.Title, Revenue: s.Revenue()}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"course_performance": utils.RankByStudents(stats),
		"revenue_by_course":  revenueList,
	})
}

// AdminGetStatsHistory lists the daily platform snapshots written by the
// stats scheduler, newest first.
func AdminGetStatsHistory(c *fiber.Ctx) error {
	var snapshots []models.PlatformStatsSnapshot
	if err := database.Database.Db.Order("date desc").Limit(90).Find(&snapshots).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats history fetched successfully!", fiber.Map{
		"snapshots": snapshots,
	})
}
