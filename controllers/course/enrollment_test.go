package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollInCourse(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)
	course := seedCourse(t, "Go Basics", 49.99, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var refreshed courseModels.Course
	require.NoError(t, database.Database.Db.First(&refreshed, course.ID).Error)
	assert.EqualValues(t, 1, refreshed.EnrolledStudents)
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)
	course := seedCourse(t, "Go Basics", 49.99, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, parsed := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, parsed["status"])

	// Still exactly one enrollment and the headcount was bumped once.
	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var refreshed courseModels.Course
	require.NoError(t, database.Database.Db.First(&refreshed, course.ID).Error)
	assert.EqualValues(t, 1, refreshed.EnrolledStudents)
}

func TestEnrollMissingCourse(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)

	resp, _ := doRequest(t, app, "POST", "/course/9999/enroll", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics", 49.99, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnenrollFreesSeatAndAllowsReenroll(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)
	course := seedCourse(t, "Go Basics", 49.99, 2)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed courseModels.Course
	require.NoError(t, database.Database.Db.First(&refreshed, course.ID).Error)
	assert.EqualValues(t, 0, refreshed.EnrolledStudents)

	// The unique (user, course) slot is free again.
	resp, _ = doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnenrollWithoutEnrollment(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)
	course := seedCourse(t, "Go Basics", 49.99, 2)

	resp, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEnrollmentsListsCourses(t *testing.T) {
	app := setupTestApp(t)
	_, token := newTestUser(t, models.RoleStudent)
	first := seedCourse(t, "Go Basics", 49.99, 2)
	second := seedCourse(t, "Advanced Go", 99.99, 4)

	for _, id := range []uint{first.ID, second.ID} {
		resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", id), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, parsed := doRequest(t, app, "GET", "/user/enrollments", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, parsed)
	assert.EqualValues(t, 2, data["total"])
}
