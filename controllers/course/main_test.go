package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/routers/authRoutes"
	"lms/routers/courseRoutes"
	"lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestApp wires a Fiber app with all routes against a fresh in-memory
// sqlite database.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	// A named shared in-memory database keeps the schema visible across the
	// pool's connections while staying private to this test.
	dsn := fmt.Sprintf("file:coursetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	return app
}

// newTestUser inserts a user and returns it with a valid bearer token.
func newTestUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s%d@example.com", role, atomic.AddInt64(&testDBCounter, 1)),
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

// seedCourse inserts a course with the given number of lessons.
func seedCourse(t *testing.T, title string, price float64, lessonCount int) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       title,
		Description: "Seeded course",
		Price:       price,
		Level:       courseModels.LevelBeginner,
	}
	for i := 0; i < lessonCount; i++ {
		course.Lessons = append(course.Lessons, courseModels.Lesson{
			Title:         fmt.Sprintf("%s lesson %d", title, i+1),
			Duration:      "15 min",
			SequenceOrder: i + 1,
		})
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

// doRequest performs a JSON request against the app and decodes the response
// envelope.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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

func dataMap(t *testing.T, parsed map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := parsed["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %v", parsed)
	return data
}
