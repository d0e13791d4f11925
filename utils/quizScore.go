package utils

// PassThreshold is the fixed passing ratio for quizzes.
const PassThreshold = 0.70

// ScoreQuiz compares selected option indexes against the answer key by
// question position. A question with no recorded selection (selected shorter
// than the key) counts as incorrect. Extra selections beyond the key are
// ignored. Total is always the number of questions.
func ScoreQuiz(correct []int, selected []int) (score, total int) {
	total = len(correct)
	for i, answer := range correct {
		if i < len(selected) && selected[i] == answer {
			score++
		}
	}
	return score, total
}

// QuizPercent returns the rounded score percentage; 0 for an empty quiz.
func QuizPercent(score, total int) int {
	if total == 0 {
		return 0
	}
	return RoundPercent(float64(score) / float64(total) * 100)
}

// QuizPassed reports whether the score meets the passing threshold. An empty
// quiz can not be passed.
func QuizPassed(score, total int) bool {
	if total == 0 {
		return false
	}
	return float64(score)/float64(total) >= PassThreshold
}
