// Package ledger owns the in-memory game state: sessions, players,
// transactions and the balances derived from them.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boardbank/banker/internal/id"
	"github.com/boardbank/banker/internal/model"
)

// Store holds every session plus the current-session reference. All
// session-scoped operations act on the current session; when no current
// session resolves they degrade to no-ops rather than failing.
//
// The store is not safe for concurrent use. There is exactly one mutator
// context per process; a multi-client adaptation would need an exclusive
// writer lock around every method.
type Store struct {
	sessions  []*model.Session
	currentID string
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Sessions returns all sessions in creation order.
func (s *Store) Sessions() []*model.Session {
	return s.sessions
}

// CreateSession creates a session, marks it current and returns it.
func (s *Store) CreateSession(name string) *model.Session {
	sess := &model.Session{
		ID:        id.New(),
		Name:      name,
		StartedAt: time.Now(),
		Active:    true,
	}
	s.sessions = append(s.sessions, sess)
	s.currentID = sess.ID
	return sess
}

// CurrentSession returns the current session, or nil when the reference is
// unset or dangling.
func (s *Store) CurrentSession() *model.Session {
	if s.currentID == "" {
		return nil
	}
	return s.sessionByID(s.currentID)
}

// SetCurrentSession points the current-session reference at id. Unknown ids
// are rejected silently so the reference never dangles.
func (s *Store) SetCurrentSession(sessionID string) bool {
	if s.sessionByID(sessionID) == nil {
		return false
	}
	s.currentID = sessionID
	return true
}

// EndSession stamps EndedAt and clears the Active flag.
func (s *Store) EndSession(sessionID string) bool {
	sess := s.sessionByID(sessionID)
	if sess == nil {
		return false
	}
	now := time.Now()
	sess.EndedAt = &now
	sess.Active = false
	return true
}

// DeleteSession removes a session and everything it owns. If it was the
// current session, the first remaining session (if any) becomes current.
func (s *Store) DeleteSession(sessionID string) bool {
	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == sessionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	if s.currentID == sessionID {
		s.currentID = ""
		if len(s.sessions) > 0 {
			s.currentID = s.sessions[0].ID
		}
	}
	return true
}

func (s *Store) sessionByID(sessionID string) *model.Session {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess
		}
	}
	return nil
}

// PlayerParams holds the caller-supplied fields for a new player. Zero
// values fall back to the model defaults.
type PlayerParams struct {
	Name           string
	Avatar         string
	Color          string
	InitialBalance decimal.Decimal
}

// PlayerUpdate is a field-merge patch; nil fields are left untouched.
type PlayerUpdate struct {
	Name           *string
	Avatar         *string
	Color          *string
	InitialBalance *decimal.Decimal
}

// Players returns the current session's players, or nil without one.
func (s *Store) Players() []model.Player {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	return sess.Players
}

// PlayerByID resolves a player in the current session. The bank sentinel is
// synthesized on every lookup and never stored.
func (s *Store) PlayerByID(playerID string) (model.Player, bool) {
	if model.IsBank(playerID) {
		return model.Bank(), true
	}
	sess := s.CurrentSession()
	if sess == nil {
		return model.Player{}, false
	}
	for _, p := range sess.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return model.Player{}, false
}

// DisplayName resolves a participant id for presentation. Dangling ids
// resolve to a placeholder, never an error.
func (s *Store) DisplayName(playerID string) string {
	if p, ok := s.PlayerByID(playerID); ok {
		return p.Name
	}
	return "Unknown"
}

// AddPlayer creates a player in the current session. Returns nil without a
// current session.
func (s *Store) AddPlayer(params PlayerParams) *model.Player {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	p := model.Player{
		ID:             id.New(),
		Name:           params.Name,
		Avatar:         params.Avatar,
		Color:          params.Color,
		InitialBalance: params.InitialBalance,
	}
	if p.Avatar == "" {
		p.Avatar = model.DefaultAvatar
	}
	if p.Color == "" {
		p.Color = model.DefaultColor
	}
	if p.InitialBalance.Sign() <= 0 {
		p.InitialBalance = model.DefaultInitialBalance
	}
	sess.Players = append(sess.Players, p)
	return &sess.Players[len(sess.Players)-1]
}

// UpdatePlayer merges the patch into an existing player. The id itself is
// immutable. Returns nil when the session or player is missing.
func (s *Store) UpdatePlayer(playerID string, patch PlayerUpdate) *model.Player {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	for i := range sess.Players {
		if sess.Players[i].ID != playerID {
			continue
		}
		p := &sess.Players[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Avatar != nil {
			p.Avatar = *patch.Avatar
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		if patch.InitialBalance != nil {
			p.InitialBalance = *patch.InitialBalance
		}
		return p
	}
	return nil
}

// DeletePlayer removes a player from the current session. Transactions
// referencing the id are left untouched; the id simply dangles.
func (s *Store) DeletePlayer(playerID string) bool {
	sess := s.CurrentSession()
	if sess == nil {
		return false
	}
	for i := range sess.Players {
		if sess.Players[i].ID == playerID {
			sess.Players = append(sess.Players[:i], sess.Players[i+1:]...)
			return true
		}
	}
	return false
}

// TransactionDraft holds the normalized-on-entry fields for a transaction.
// Zero/invalid values coerce to safe defaults instead of being rejected.
type TransactionDraft struct {
	Timestamp  time.Time
	FromPlayer string
	ToPlayer   string
	Concept    model.Concept
	Amount     decimal.Decimal
	Property   string
	ColorGroup model.ColorGroup
	Houses     int
	Hotel      bool
	Notes      string
}

// TransactionUpdate is a field-merge patch; nil fields are left untouched.
type TransactionUpdate struct {
	Timestamp  *time.Time
	FromPlayer *string
	ToPlayer   *string
	Concept    *model.Concept
	Amount     *decimal.Decimal
	Property   *string
	ColorGroup *model.ColorGroup
	Houses     *int
	Hotel      *bool
	Notes      *string
}

// Transactions returns the current session's transactions in insertion
// order, or nil without one.
func (s *Store) Transactions() []model.Transaction {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	return sess.Transactions
}

// TransactionByID resolves a transaction in the current session.
func (s *Store) TransactionByID(txID string) (model.Transaction, bool) {
	for _, t := range s.Transactions() {
		if t.ID == txID {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// AddTransaction normalizes the draft and appends it to the current
// session. Player ids are not validated; dangling references resolve at
// read time. Returns nil without a current session.
func (s *Store) AddTransaction(draft TransactionDraft) *model.Transaction {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	tx := model.Transaction{
		ID:         id.New(),
		Timestamp:  draft.Timestamp,
		FromPlayer: draft.FromPlayer,
		ToPlayer:   draft.ToPlayer,
		Concept:    draft.Concept,
		Amount:     draft.Amount,
		Property:   draft.Property,
		ColorGroup: draft.ColorGroup,
		Houses:     draft.Houses,
		Hotel:      draft.Hotel,
		Notes:      draft.Notes,
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}
	if tx.Concept == "" {
		tx.Concept = model.ConceptOther
	}
	if tx.Amount.Sign() < 0 {
		tx.Amount = decimal.Zero
	}
	if tx.Houses < 0 {
		tx.Houses = 0
	}
	sess.Transactions = append(sess.Transactions, tx)
	return &sess.Transactions[len(sess.Transactions)-1]
}

// UpdateTransaction merges the patch into an existing transaction, applying
// the same normalization as AddTransaction to patched fields.
func (s *Store) UpdateTransaction(txID string, patch TransactionUpdate) *model.Transaction {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}
	for i := range sess.Transactions {
		if sess.Transactions[i].ID != txID {
			continue
		}
		tx := &sess.Transactions[i]
		if patch.Timestamp != nil && !patch.Timestamp.IsZero() {
			tx.Timestamp = *patch.Timestamp
		}
		if patch.FromPlayer != nil {
			tx.FromPlayer = *patch.FromPlayer
		}
		if patch.ToPlayer != nil {
			tx.ToPlayer = *patch.ToPlayer
		}
		if patch.Concept != nil && *patch.Concept != "" {
			tx.Concept = *patch.Concept
		}
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
			if tx.Amount.Sign() < 0 {
				tx.Amount = decimal.Zero
			}
		}
		if patch.Property != nil {
			tx.Property = *patch.Property
		}
		if patch.ColorGroup != nil {
			tx.ColorGroup = *patch.ColorGroup
		}
		if patch.Houses != nil {
			tx.Houses = *patch.Houses
			if tx.Houses < 0 {
				tx.Houses = 0
			}
		}
		if patch.Hotel != nil {
			tx.Hotel = *patch.Hotel
		}
		if patch.Notes != nil {
			tx.Notes = *patch.Notes
		}
		return tx
	}
	return nil
}

// DeleteTransaction removes a transaction from the current session.
func (s *Store) DeleteTransaction(txID string) bool {
	sess := s.CurrentSession()
	if sess == nil {
		return false
	}
	for i := range sess.Transactions {
		if sess.Transactions[i].ID == txID {
			sess.Transactions = append(sess.Transactions[:i], sess.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Balance derives a player's balance: initial balance plus everything
// received minus everything paid. It is a pure function of current session
// state; nothing is cached. The bank has no balance and reports zero, as do
// unknown players and the no-session case.
func (s *Store) Balance(playerID string) decimal.Decimal {
	sess := s.CurrentSession()
	if sess == nil || model.IsBank(playerID) {
		return decimal.Zero
	}
	var player *model.Player
	for i := range sess.Players {
		if sess.Players[i].ID == playerID {
			player = &sess.Players[i]
			break
		}
	}
	if player == nil {
		return decimal.Zero
	}
	balance := player.InitialBalance
	for _, tx := range sess.Transactions {
		if tx.ToPlayer == playerID {
			balance = balance.Add(tx.Amount)
		}
		if tx.FromPlayer == playerID {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}
