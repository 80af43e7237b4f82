// Package quiz — scoring.go applies the fixed point values per answer.
package quiz

// Point values per answer outcome. A wrong answer still earns participation
// points; skipping earns nothing.
const (
	PointsCorrect    = 10
	PointsWrong      = 5
	PointsUnanswered = 0
)

// Score computes the quiz score of an answer sheet against its question set.
// Answers are matched positionally; the caller guarantees equal lengths.
func Score(questions []Question, answers []Selected) int {
	total := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i].SelectedIndex == nil {
			total += PointsUnanswered
			continue
		}
		if *answers[i].SelectedIndex == q.CorrectIndex {
			total += PointsCorrect
		} else {
			total += PointsWrong
		}
	}
	return total
}
