package models

import "time"

// Match is a persisted record of one completed game.
type Match struct {
	ID         string    `json:"id"`
	FinishedAt time.Time `json:"finished_at"`
	Usernames  []string  `json:"usernames"`
	Scores     []int64   `json:"scores"`
}
