// Package leaderboard ranks participants by lifetime total, globally or
// within one community. models.go describes the ranked rows.
package leaderboard

// Scope selects which participants compete. Empty community code = global.
type Scope struct {
	CommunityCode string
}

// Global is the unscoped leaderboard.
var Global = Scope{}

// Community scopes the board to one community code.
func Community(code string) Scope {
	return Scope{CommunityCode: code}
}

// Entry is one ranked row. DisplayName is already privacy-resolved: the
// requester sees their own real name, everyone else appears under their
// pseudonym.
type Entry struct {
	Rank        int
	UserID      int64
	DisplayName string
	TotalScore  int
	IsRequester bool
}
