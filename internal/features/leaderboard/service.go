// Package leaderboard — service.go resolves display names and tags the
// requester's row.
package leaderboard

import "context"

// defaultLimit caps how many rows a board shows.
const defaultLimit = 20

// Service produces ranked, privacy-resolved leaderboards.
type Service struct {
	repo *Repository
}

// NewService creates a leaderboard service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Rank returns the ranked entries for scope, tagging requesterID's row.
// Other participants are shown by pseudonym so the deeds stay anonymous; the
// requester sees their own real name.
func (s *Service) Rank(ctx context.Context, scope Scope, requesterID int64) ([]Entry, error) {
	rows, err := s.repo.rank(ctx, scope, defaultLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		e := Entry{
			Rank:        r.Rank,
			UserID:      r.UserID,
			DisplayName: r.Pseudonym,
			TotalScore:  r.TotalScore,
			IsRequester: r.UserID == requesterID,
		}
		if e.IsRequester {
			e.DisplayName = realName(r)
		}
		if e.DisplayName == "" {
			e.DisplayName = "Hamba Allah"
		}
		entries[i] = e
	}
	return entries, nil
}

func realName(r row) string {
	if r.Username != "" {
		return "@" + r.Username
	}
	name := r.FirstName
	if r.LastName != "" {
		name += " " + r.LastName
	}
	return name
}
