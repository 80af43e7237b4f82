// Package common — errors.go defines the sentinel errors shared by all
// features. Handlers match on these to pick the right user-facing reply
// instead of parsing error strings.
package common

import "errors"

// Check-in errors
var (
	// ErrNoActivities — submission with an empty activity selection
	ErrNoActivities = errors.New("pilih minimal satu aktivitas")
	// ErrEditWindowClosed — the date is older than the backfill limit
	ErrEditWindowClosed = errors.New("tanggal sudah di luar batas edit (maksimal 2 hari ke belakang)")
	// ErrFutureDate — the date is after today
	ErrFutureDate = errors.New("tidak bisa check-in untuk tanggal yang akan datang")
	// ErrOutsideChallenge — the date is outside the challenge period
	ErrOutsideChallenge = errors.New("tanggal di luar periode tantangan")
)

// Quiz errors
var (
	// ErrNoQuizToday — no question set exists for the given challenge day
	ErrNoQuizToday = errors.New("tidak ada quiz untuk hari ini")
	// ErrAnswerCount — answer sheet length does not match the question count
	ErrAnswerCount = errors.New("jumlah jawaban tidak sesuai jumlah pertanyaan")
)

// Participant errors
var (
	// ErrParticipantNotFound — user has no participant record yet
	ErrParticipantNotFound = errors.New("peserta belum terdaftar")
	// ErrCommunityCodeInvalid — community code is empty or too long
	ErrCommunityCodeInvalid = errors.New("kode komunitas tidak valid (1-32 karakter)")
)

// Admin errors
var (
	// ErrNotAdmin — user has no active admin session
	ErrNotAdmin = errors.New("anda bukan admin")
	// ErrWrongPassword — admin password mismatch
	ErrWrongPassword = errors.New("password salah")
	// ErrTooManyAttempts — brute-force lockout in effect
	ErrTooManyAttempts = errors.New("terlalu banyak percobaan, tunggu 1 jam")
)
