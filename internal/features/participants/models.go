// Package participants manages the people taking part in the challenge.
// models.go describes the participants table rows.
package participants

import "time"

// Participant is one Telegram user enrolled in the challenge.
// Anyone who writes in the community chat is enrolled automatically on their
// first message; the community code is optional and only affects which
// leaderboard scope they appear in.
type Participant struct {
	ID            int64     `db:"id"`             // Auto-increment row id
	UserID        int64     `db:"user_id"`        // Telegram user id (unique)
	Username      string    `db:"username"`       // @username, may be empty
	FirstName     string    `db:"first_name"`     // First name
	LastName      string    `db:"last_name"`      // Last name, may be empty
	CommunityCode string    `db:"community_code"` // Leaderboard scope, may be empty
	Pseudonym     string    `db:"pseudonym"`      // Anonymized leaderboard name
	JoinedAt      time.Time `db:"joined_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// UpdateInfo carries refreshed profile data for a returning participant
// whose Telegram name or username may have changed.
type UpdateInfo struct {
	Username  string
	FirstName string
	LastName  string
}

// DisplayName returns the participant's own readable name (used only for the
// requester's leaderboard row; everyone else sees the pseudonym).
func (p *Participant) DisplayName() string {
	if p.Username != "" {
		return "@" + p.Username
	}
	name := p.FirstName
	if p.LastName != "" {
		name += " " + p.LastName
	}
	return name
}
