// Package quiz implements the daily multiple-choice quiz.
// content.go holds the static per-day question sets.
//
// Question sets are keyed by challenge day number (day 1 = CHALLENGE_START).
// Days without a set simply have no quiz.
package quiz

// Question is one multiple-choice question.
type Question struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
}

// DailyQuiz is the question set for one challenge day.
type DailyQuiz struct {
	Day        int
	VideoTitle string
	VideoURL   string
	Questions  []Question
}

// Quizzes maps challenge day -> question set.
var Quizzes = map[int]DailyQuiz{
	1: {
		Day:        1,
		VideoTitle: "Kajian Ramadhan - Episode 1",
		VideoURL:   "https://youtube.com/playlist?list=PL0gi92PTPH63uLZqFJl3gjp1WOQP1kYRK",
		Questions: []Question{
			{
				ID:   "q1",
				Text: "Apa hikmah utama berpuasa di bulan Ramadhan?",
				Options: []string{
					"Untuk menahan lapar dan haus",
					"Untuk meningkatkan ketakwaan kepada Allah",
					"Untuk menurunkan berat badan",
					"Untuk menghemat makanan",
				},
				CorrectIndex: 1,
			},
			{
				ID:   "q2",
				Text: "Kapan waktu yang mustajab untuk berdoa saat puasa?",
				Options: []string{
					"Saat sahur",
					"Saat berbuka",
					"Sebelum berbuka",
					"Semua waktu di atas",
				},
				CorrectIndex: 3,
			},
		},
	},
	2: {
		Day:        2,
		VideoTitle: "Kajian Ramadhan - Episode 2",
		VideoURL:   "https://youtube.com/playlist?list=PL0gi92PTPH63uLZqFJl3gjp1WOQP1kYRK",
		Questions: []Question{
			{
				ID:   "q1",
				Text: "Amalan apa yang pahalanya dilipatgandakan di bulan Ramadhan?",
				Options: []string{
					"Hanya puasa",
					"Hanya sholat tarawih",
					"Semua amal kebaikan",
					"Hanya membaca Al-Qur'an",
				},
				CorrectIndex: 2,
			},
			{
				ID:   "q2",
				Text: "Apa yang dianjurkan ketika berbuka puasa?",
				Options: []string{
					"Menyegerakan berbuka",
					"Menunda berbuka hingga isya",
					"Berbuka dengan makanan berat",
					"Tidak berdoa sebelum berbuka",
				},
				CorrectIndex: 0,
			},
		},
	},
}

// ForDay returns the question set for a challenge day.
func ForDay(day int) (DailyQuiz, bool) {
	q, ok := Quizzes[day]
	return q, ok
}
