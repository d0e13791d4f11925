package utils

import "math"

// CourseOutline is the lesson list of one enrolled course, as needed for
// progress computation.
type CourseOutline struct {
	CourseID  uint
	LessonIDs []uint
}

// CompletedSet builds a lookup set from a list of completed lesson IDs.
func CompletedSet(lessonIDs []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(lessonIDs))
	for _, id := range lessonIDs {
		set[id] = struct{}{}
	}
	return set
}

// CourseProgress returns the completion percentage for a single course:
// completed lessons that belong to the course, over the course's lesson
// count. A course with no lessons is 0. The result is unrounded; use
// RoundPercent for display.
func CourseProgress(lessonIDs []uint, completed map[uint]struct{}) float64 {
	if len(lessonIDs) == 0 {
		return 0
	}
	done := 0
	for _, id := range lessonIDs {
		if _, ok := completed[id]; ok {
			done++
		}
	}
	return float64(done) / float64(len(lessonIDs)) * 100
}

// OverallProgress returns the completion percentage across all enrolled
// courses. Completed lesson IDs that belong to none of the outlines (for
// example lessons of a course the user has since left) count toward neither
// the numerator nor the denominator.
func OverallProgress(outlines []CourseOutline, completed map[uint]struct{}) float64 {
	totalLessons := 0
	done := 0
	for _, outline := range outlines {
		totalLessons += len(outline.LessonIDs)
		for _, id := range outline.LessonIDs {
			if _, ok := completed[id]; ok {
				done++
			}
		}
	}
	if totalLessons == 0 {
		return 0
	}
	return float64(done) / float64(totalLessons) * 100
}

// RoundPercent rounds a percentage to the nearest integer for display.
func RoundPercent(p float64) int {
	return int(math.Round(p))
}
