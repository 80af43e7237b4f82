// Package participants — repository.go runs all queries against the
// participants table.
package participants

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides access to the participants table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a participants repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const participantColumns = `
	id, user_id, username, first_name, last_name,
	community_code, pseudonym, joined_at, created_at, updated_at
`

// Create inserts a new participant. A duplicate user_id is a no-op so the
// enrollment path can race with itself safely.
func (r *Repository) Create(ctx context.Context, p *Participant) error {
	query := `
		INSERT INTO participants (user_id, username, first_name, last_name, community_code, pseudonym)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		p.UserID, p.Username, p.FirstName, p.LastName, p.CommunityCode, p.Pseudonym,
	)
	if err != nil {
		return fmt.Errorf("gagal membuat peserta: %w", err)
	}
	return nil
}

// GetByUserID returns one participant by Telegram user id.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE user_id = $1`
	var p Participant
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Username, &p.FirstName, &p.LastName,
		&p.CommunityCode, &p.Pseudonym, &p.JoinedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("peserta tidak ditemukan (user_id=%d): %w", userID, err)
	}
	return &p, nil
}

// Exists reports whether a participant record exists.
func (r *Repository) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM participants WHERE user_id = $1)", userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("gagal cek peserta: %w", err)
	}
	return exists, nil
}

// UpdateInfo refreshes profile fields for a returning participant.
func (r *Repository) UpdateInfo(ctx context.Context, userID int64, info UpdateInfo) error {
	query := `
		UPDATE participants
		SET username = $2, first_name = $3, last_name = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	_, err := r.db.Exec(ctx, query, userID, info.Username, info.FirstName, info.LastName)
	if err != nil {
		return fmt.Errorf("gagal memperbarui peserta: %w", err)
	}
	return nil
}

// SetCommunityCode changes the participant's leaderboard scope.
func (r *Repository) SetCommunityCode(ctx context.Context, userID int64, code string) error {
	query := `UPDATE participants SET community_code = $2, updated_at = NOW() WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID, code)
	if err != nil {
		return fmt.Errorf("gagal mengubah kode komunitas: %w", err)
	}
	return nil
}

// ListUserIDs returns every enrolled participant's user id.
// Used by the purge command and the reminder job.
func (r *Repository) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id FROM participants ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar peserta: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("gagal scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
