package model

import "github.com/shopspring/decimal"

// BankID is the id of the implicit bank counterparty. The bank is never
// stored in a session's player list; lookups synthesize it on demand.
const BankID = "bank"

// Defaults applied when a player is created without explicit values.
var (
	DefaultAvatar         = "🎩"
	DefaultColor          = "#e94560"
	DefaultInitialBalance = decimal.NewFromInt(1500)
)

// Player is a tracked participant in a session. The id is immutable after
// creation; everything else can be edited.
type Player struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Avatar         string          `json:"avatar"`
	Color          string          `json:"color"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// Bank returns the synthesized bank pseudo-player.
func Bank() Player {
	return Player{
		ID:             BankID,
		Name:           "Bank",
		Avatar:         "🏦",
		Color:          "#6c757d",
		InitialBalance: decimal.Zero,
	}
}

// IsBank reports whether id refers to the bank sentinel.
func IsBank(id string) bool {
	return id == BankID
}
