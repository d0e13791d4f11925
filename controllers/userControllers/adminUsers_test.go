package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/routers/courseRoutes"
	"lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userDBCounter int64

func setupUserApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:usertest%d?mode=memory&cache=shared", atomic.AddInt64(&userDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupAdminRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	return app
}

func makeUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s%d@example.com", role, atomic.AddInt64(&userDBCounter, 1)),
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestAdminListUsers(t *testing.T) {
	app := setupUserApp(t)
	_, adminToken := makeUser(t, models.RoleAdmin)
	makeUser(t, models.RoleStudent)
	makeUser(t, models.RoleStudent)

	resp, parsed := request(t, app, "GET", "/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["total_users"])
}

func TestAdminListUsersForbiddenForStudents(t *testing.T) {
	app := setupUserApp(t)
	_, studentToken := makeUser(t, models.RoleStudent)

	resp, _ := request(t, app, "GET", "/admin/users", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminChangeRole(t *testing.T) {
	app := setupUserApp(t)
	_, adminToken := makeUser(t, models.RoleAdmin)
	student, _ := makeUser(t, models.RoleStudent)

	resp, parsed := request(t, app, "PUT", fmt.Sprintf("/admin/users/%d/role", student.ID), adminToken,
		map[string]string{"role": models.RoleInstructor})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, models.RoleInstructor, data["role"])

	var refreshed models.User
	require.NoError(t, database.Database.Db.First(&refreshed, student.ID).Error)
	assert.Equal(t, models.RoleInstructor, refreshed.Role)
}

func TestAdminChangeRoleRejectsUnknownRole(t *testing.T) {
	app := setupUserApp(t)
	_, adminToken := makeUser(t, models.RoleAdmin)
	student, _ := makeUser(t, models.RoleStudent)

	resp, _ := request(t, app, "PUT", fmt.Sprintf("/admin/users/%d/role", student.ID), adminToken,
		map[string]string{"role": "superuser"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminDeleteUserCleansUp(t *testing.T) {
	app := setupUserApp(t)
	_, adminToken := makeUser(t, models.RoleAdmin)
	student, _ := makeUser(t, models.RoleStudent)

	course := courseModels.Course{Title: "Go Basics", Price: 10, Level: courseModels.LevelBeginner, EnrolledStudents: 1}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	require.NoError(t, database.Database.Db.Create(&courseModels.Enrollment{
		UserID: student.ID, CourseID: course.ID, Status: "ENROLLED",
	}).Error)

	resp, _ := request(t, app, "DELETE", fmt.Sprintf("/admin/users/%d", student.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", student.ID).Count(&enrollCount)
	assert.EqualValues(t, 0, enrollCount)

	var refreshedCourse courseModels.Course
	require.NoError(t, database.Database.Db.First(&refreshedCourse, course.ID).Error)
	assert.EqualValues(t, 0, refreshedCourse.EnrolledStudents)

	var refreshed models.User
	require.NoError(t, database.Database.Db.First(&refreshed, student.ID).Error)
	assert.True(t, refreshed.IsDeleted)

	// Deleted accounts disappear from the listing.
	resp, parsed := request(t, app, "GET", "/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := parsed["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_users"])
}

func TestGetProfile(t *testing.T) {
	app := setupUserApp(t)
	user, token := makeUser(t, models.RoleStudent)

	course := courseModels.Course{Title: "Go Basics", Price: 10, Level: courseModels.LevelBeginner}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	require.NoError(t, database.Database.Db.Create(&courseModels.Enrollment{
		UserID: user.ID, CourseID: course.ID, Status: "ENROLLED",
	}).Error)

	resp, parsed := request(t, app, "GET", "/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	profile := data["user"].(map[string]interface{})
	assert.Equal(t, user.Email, profile["email"])
	assert.EqualValues(t, 1, data["enrolled_courses_count"])
}
