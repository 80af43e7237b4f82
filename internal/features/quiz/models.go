// Package quiz — models.go describes the quiz_answers table rows.
package quiz

import "time"

// Selected is one answered (or skipped) question on a sheet.
// SelectedIndex is nil for an unanswered question.
type Selected struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex *int   `json:"selected_index"`
}

// AnswerSheet is one user's submitted quiz for one calendar date.
// At most one sheet per (user_id, date); re-submitting overwrites (upsert).
type AnswerSheet struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	Date      time.Time  `db:"date"`
	Answers   []Selected `db:"answers"`
	QuizScore int        `db:"quiz_score"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
