package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseProgress(t *testing.T) {
	lessons := []uint{1, 2, 3, 4}

	tests := []struct {
		name      string
		lessonIDs []uint
		completed []uint
		want      float64
	}{
		{
			name:      "no completions",
			lessonIDs: lessons,
			completed: nil,
			want:      0,
		},
		{
			name:      "three of four lessons",
			lessonIDs: lessons,
			completed: []uint{1, 2, 3},
			want:      75,
		},
		{
			name:      "all lessons",
			lessonIDs: lessons,
			completed: []uint{1, 2, 3, 4},
			want:      100,
		},
		{
			name:      "foreign completions are ignored",
			lessonIDs: lessons,
			completed: []uint{99, 100},
			want:      0,
		},
		{
			name:      "course with no lessons",
			lessonIDs: nil,
			completed: []uint{1, 2},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseProgress(tt.lessonIDs, CompletedSet(tt.completed))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestOverallProgress(t *testing.T) {
	// Course A has 4 lessons with 3 completed, course B has 2 lessons with
	// none completed: overall is 3/6 = 50%.
	outlines := []CourseOutline{
		{CourseID: 1, LessonIDs: []uint{1, 2, 3, 4}},
		{CourseID: 2, LessonIDs: []uint{5, 6}},
	}
	completed := CompletedSet([]uint{1, 2, 3})

	assert.InDelta(t, 50, OverallProgress(outlines, completed), 0.0001)
	assert.InDelta(t, 75, CourseProgress(outlines[0].LessonIDs, completed), 0.0001)
	assert.InDelta(t, 0, CourseProgress(outlines[1].LessonIDs, completed), 0.0001)
}

func TestOverallProgress_UnenrolledLessonIsNoOp(t *testing.T) {
	outlines := []CourseOutline{
		{CourseID: 1, LessonIDs: []uint{1, 2, 3, 4}},
	}

	base := OverallProgress(outlines, CompletedSet([]uint{1, 2}))
	// Lesson 42 belongs to no enrolled course; it must change nothing.
	withStray := OverallProgress(outlines, CompletedSet([]uint{1, 2, 42}))

	assert.InDelta(t, base, withStray, 0.0001)
	assert.InDelta(t, 50, withStray, 0.0001)
}

func TestOverallProgress_NoEnrolledLessons(t *testing.T) {
	assert.Zero(t, OverallProgress(nil, CompletedSet([]uint{1})))
	assert.Zero(t, OverallProgress([]CourseOutline{{CourseID: 1}}, nil))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 75, RoundPercent(75.0))
	assert.Equal(t, 67, RoundPercent(200.0/3.0))
	assert.Equal(t, 33, RoundPercent(100.0/3.0))
	assert.Equal(t, 0, RoundPercent(0))
}
