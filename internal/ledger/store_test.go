package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardbank/banker/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.CreateSession("Friday night")
	return s
}

func TestCreateSession_BecomesCurrent(t *testing.T) {
	s := New()
	sess := s.CreateSession("First")
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, sess.Active)
	assert.WithinDuration(t, time.Now(), sess.StartedAt, time.Second)

	current := s.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, sess.ID, current.ID)

	second := s.CreateSession("Second")
	assert.Equal(t, second.ID, s.CurrentSession().ID)
	assert.Len(t, s.Sessions(), 2)
}

func TestSetCurrentSession_UnknownIsNoOp(t *testing.T) {
	s := newTestStore(t)
	before := s.CurrentSession().ID

	assert.False(t, s.SetCurrentSession("nope"))
	require.NotNil(t, s.CurrentSession())
	assert.Equal(t, before, s.CurrentSession().ID)
}

func TestDeleteSession_ReassignsCurrent(t *testing.T) {
	s := New()
	first := s.CreateSession("First")
	second := s.CreateSession("Second")

	require.True(t, s.DeleteSession(second.ID))
	require.NotNil(t, s.CurrentSession())
	assert.Equal(t, first.ID, s.CurrentSession().ID)

	require.True(t, s.DeleteSession(first.ID))
	assert.Nil(t, s.CurrentSession())
	assert.False(t, s.DeleteSession(first.ID), "double delete")
}

func TestEndSession(t *testing.T) {
	s := newTestStore(t)
	sess := s.CurrentSession()

	require.True(t, s.EndSession(sess.ID))
	assert.False(t, sess.Active)
	require.NotNil(t, sess.EndedAt)
	assert.WithinDuration(t, time.Now(), *sess.EndedAt, time.Second)

	assert.False(t, s.EndSession("nope"))
}

func TestNoCurrentSession_AllOpsDegrade(t *testing.T) {
	s := New()

	assert.Nil(t, s.AddPlayer(PlayerParams{Name: "Ana"}))
	assert.Nil(t, s.UpdatePlayer("x", PlayerUpdate{}))
	assert.False(t, s.DeletePlayer("x"))
	assert.Nil(t, s.Players())

	assert.Nil(t, s.AddTransaction(TransactionDraft{Amount: dec("100")}))
	assert.Nil(t, s.UpdateTransaction("x", TransactionUpdate{}))
	assert.False(t, s.DeleteTransaction("x"))
	assert.Nil(t, s.Transactions())

	assert.True(t, s.Balance("x").IsZero())
}

func TestAddPlayer_Defaults(t *testing.T) {
	s := newTestStore(t)

	p := s.AddPlayer(PlayerParams{Name: "Ana"})
	require.NotNil(t, p)
	assert.Equal(t, model.DefaultAvatar, p.Avatar)
	assert.Equal(t, model.DefaultColor, p.Color)
	assert.True(t, p.InitialBalance.Equal(dec("1500")))

	q := s.AddPlayer(PlayerParams{Name: "Bob", InitialBalance: dec("-200")})
	require.NotNil(t, q)
	assert.True(t, q.InitialBalance.Equal(dec("1500")), "non-positive balance falls back")

	r := s.AddPlayer(PlayerParams{Name: "Cleo", Avatar: "🚗", Color: "#123456", InitialBalance: dec("2000")})
	require.NotNil(t, r)
	assert.Equal(t, "🚗", r.Avatar)
	assert.True(t, r.InitialBalance.Equal(dec("2000")))
}

func TestUpdatePlayer_FieldMerge(t *testing.T) {
	s := newTestStore(t)
	p := s.AddPlayer(PlayerParams{Name: "Ana"})

	name := "Anna"
	updated := s.UpdatePlayer(p.ID, PlayerUpdate{Name: &name})
	require.NotNil(t, updated)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, model.DefaultAvatar, updated.Avatar, "unpatched field untouched")
	assert.Equal(t, p.ID, updated.ID, "id immutable")

	assert.Nil(t, s.UpdatePlayer("nope", PlayerUpdate{Name: &name}))
}

func TestPlayerByID_BankSynthesized(t *testing.T) {
	s := newTestStore(t)

	bank, ok := s.PlayerByID(model.BankID)
	require.True(t, ok)
	assert.Equal(t, "Bank", bank.Name)
	assert.Empty(t, s.Players(), "bank is never stored")

	_, ok = s.PlayerByID("dangling")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", s.DisplayName("dangling"))
}

func TestDeletePlayer_TransactionsUntouched(t *testing.T) {
	s := newTestStore(t)
	p := s.AddPlayer(PlayerParams{Name: "Ana"})
	s.AddTransaction(TransactionDraft{FromPlayer: model.BankID, ToPlayer: p.ID, Amount: dec("200")})
	s.AddTransaction(TransactionDraft{FromPlayer: p.ID, ToPlayer: model.BankID, Amount: dec("50")})

	require.True(t, s.DeletePlayer(p.ID))
	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, p.ID, txs[0].ToPlayer, "dangling id preserved")
	assert.True(t, txs[0].Amount.Equal(dec("200")))
}

func TestAddTransaction_Normalization(t *testing.T) {
	s := newTestStore(t)

	tx := s.AddTransaction(TransactionDraft{
		FromPlayer: model.BankID,
		ToPlayer:   "whoever",
		Amount:     dec("-40"),
		Houses:     -3,
	})
	require.NotNil(t, tx)
	assert.True(t, tx.Amount.IsZero(), "negative amount coerced to zero")
	assert.Equal(t, 0, tx.Houses)
	assert.Equal(t, model.ConceptOther, tx.Concept)
	assert.WithinDuration(t, time.Now(), tx.Timestamp, time.Second)
	assert.Len(t, s.Transactions(), 1, "zero-amount transactions still created")
}

func TestUpdateTransaction_FieldMerge(t *testing.T) {
	s := newTestStore(t)
	tx := s.AddTransaction(TransactionDraft{
		FromPlayer: model.BankID,
		ToPlayer:   "p1",
		Concept:    model.ConceptRent,
		Amount:     dec("100"),
	})

	amount := dec("250")
	notes := "late rent"
	updated := s.UpdateTransaction(tx.ID, TransactionUpdate{Amount: &amount, Notes: &notes})
	require.NotNil(t, updated)
	assert.True(t, updated.Amount.Equal(dec("250")))
	assert.Equal(t, "late rent", updated.Notes)
	assert.Equal(t, model.ConceptRent, updated.Concept, "unpatched field untouched")

	neg := dec("-5")
	updated = s.UpdateTransaction(tx.ID, TransactionUpdate{Amount: &neg})
	require.NotNil(t, updated)
	assert.True(t, updated.Amount.IsZero())

	assert.Nil(t, s.UpdateTransaction("nope", TransactionUpdate{}))
}

func TestBalance_DerivedFromTransactions(t *testing.T) {
	s := newTestStore(t)
	ana := s.AddPlayer(PlayerParams{Name: "Ana"})
	bob := s.AddPlayer(PlayerParams{Name: "Bob", InitialBalance: dec("1000")})

	s.AddTransaction(TransactionDraft{FromPlayer: model.BankID, ToPlayer: ana.ID, Concept: model.ConceptSalary, Amount: dec("200")})
	s.AddTransaction(TransactionDraft{FromPlayer: ana.ID, ToPlayer: bob.ID, Concept: model.ConceptRent, Amount: dec("120")})
	s.AddTransaction(TransactionDraft{FromPlayer: bob.ID, ToPlayer: model.BankID, Concept: model.ConceptLuxuryTax, Amount: dec("75")})

	assert.True(t, s.Balance(ana.ID).Equal(dec("1580")), "1500 + 200 - 120")
	assert.True(t, s.Balance(bob.ID).Equal(dec("1045")), "1000 + 120 - 75")

	// Repeated calls are deterministic.
	assert.True(t, s.Balance(ana.ID).Equal(s.Balance(ana.ID)))

	// Bank and unknown players have no balance.
	assert.True(t, s.Balance(model.BankID).IsZero())
	assert.True(t, s.Balance("dangling").IsZero())
}

func TestBalance_SelfTransferIsNeutral(t *testing.T) {
	s := newTestStore(t)
	ana := s.AddPlayer(PlayerParams{Name: "Ana"})

	s.AddTransaction(TransactionDraft{FromPlayer: ana.ID, ToPlayer: ana.ID, Amount: dec("300")})
	assert.True(t, s.Balance(ana.ID).Equal(dec("1500")))
}
