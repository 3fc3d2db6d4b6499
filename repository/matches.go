package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/quizduel/quizduel-backend/game"
	"github.com/quizduel/quizduel-backend/models"
)

// MatchRepository stores final scoreboards of completed games.
type MatchRepository struct {
	db *sql.DB
}

func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// RecordMatch implements game.MatchRecorder.
func (r *MatchRepository) RecordMatch(id string, finishedAt time.Time, players []game.Player) error {
	usernames := make([]string, len(players))
	scores := make([]int64, len(players))
	for i, p := range players {
		usernames[i] = p.Username
		scores[i] = int64(p.Score)
	}

	_, err := r.db.Exec("INSERT INTO matches (id, finished_at, usernames, scores) VALUES ($1, $2, $3, $4)",
		id, finishedAt.UTC(), pq.Array(usernames), pq.Array(scores))
	return err
}

// RecentMatches returns the most recently finished games, newest first.
func (r *MatchRepository) RecentMatches(limit int) ([]models.Match, error) {
	query := "SELECT id, finished_at, usernames, scores FROM matches ORDER BY finished_at DESC LIMIT $1"
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var match models.Match
		if err := rows.Scan(&match.ID, &match.FinishedAt, pq.Array(&match.Usernames), pq.Array(&match.Scores)); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
