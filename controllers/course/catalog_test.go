package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseListIsPublic(t *testing.T) {
	app := setupTestApp(t)
	seedCourse(t, "Go Basics", 49.99, 2)
	seedCourse(t, "Advanced Go", 99.99, 3)

	resp, parsed := doRequest(t, app, "GET", "/course/list", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, parsed)
	courses, ok := data["courses"].([]interface{})
	require.True(t, ok)
	assert.Len(t, courses, 2)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["total"])
}

func TestCourseListLevelFilter(t *testing.T) {
	app := setupTestApp(t)
	seedCourse(t, "Go Basics", 49.99, 2)

	advanced := courseModels.Course{
		Title:       "Advanced Go",
		Description: "Seeded course",
		Price:       99.99,
		Level:       courseModels.LevelAdvanced,
	}
	require.NoError(t, database.Database.Db.Create(&advanced).Error)

	resp, parsed := doRequest(t, app, "GET", "/course/list?level=advanced", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, parsed)
	courses := data["courses"].([]interface{})
	require.Len(t, courses, 1)
	entry := courses[0].(map[string]interface{})
	assert.Equal(t, "Advanced Go", entry["title"])

	resp, _ = doRequest(t, app, "GET", "/course/list?level=wizard", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCourseDetailsOrdersLessons(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics", 49.99, 3)

	resp, parsed := doRequest(t, app, "GET", fmt.Sprintf("/course/%d", course.ID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, parsed)
	lessons, ok := data["lessons"].([]interface{})
	require.True(t, ok)
	require.Len(t, lessons, 3)

	for i, l := range lessons {
		entry := l.(map[string]interface{})
		assert.EqualValues(t, i+1, entry["sequence_order"])
	}
}

func TestCourseDetailsUnknownCourse(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/course/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
