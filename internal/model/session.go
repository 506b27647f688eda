package model

import "time"

// Session is one full game: its players and every transaction recorded
// during play. A Session exclusively owns its players and transactions.
type Session struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	StartedAt    time.Time     `json:"startedAt"`
	EndedAt      *time.Time    `json:"endedAt,omitempty"`
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	Active       bool          `json:"active"`
}
