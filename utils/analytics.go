package utils

import "sort"

// CourseStat is the per-course input for admin aggregation: current price
// and the number of enrollment records.
type CourseStat struct {
	CourseID uint    `json:"course_id"`
	Title    string  `json:"title"`
	Students int64   `json:"students_count"`
	Price    float64 `json:"price"`
}

// Revenue is the course's revenue at current price: headcount times price.
// Price changes therefore shift historical revenue totals as well.
func (s CourseStat) Revenue() float64 {
	return float64(s.Students) * s.Price
}

// TotalRevenue sums revenue over all courses.
func TotalRevenue(stats []CourseStat) float64 {
	var total float64
	for _, s := range stats {
		total += s.Revenue()
	}
	return total
}

// AverageEnrollment is the mean headcount over courses that have at least
// one enrollment. Courses without enrollments do not lower the average.
func AverageEnrollment(stats []CourseStat) float64 {
	var sum int64
	var courses int64
	for _, s := range stats {
		if s.Students > 0 {
			sum += s.Students
			courses++
		}
	}
	if courses == 0 {
		return 0
	}
	return float64(sum) / float64(courses)
}

// RankByStudents returns the stats sorted by headcount descending. Ties keep
// input order.
func RankByStudents(stats []CourseStat) []CourseStat {
	ranked := make([]CourseStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Students > ranked[j].Students
	})
	return ranked
}

// RankByRevenue returns the stats sorted by revenue descending. Ties keep
// input order.
func RankByRevenue(stats []CourseStat) []CourseStat {
	ranked := make([]CourseStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue() > ranked[j].Revenue()
	})
	return ranked
}
