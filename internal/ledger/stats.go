package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/boardbank/banker/internal/model"
)

// Standing pairs a player with their derived balance.
type Standing struct {
	Player  model.Player
	Balance decimal.Decimal
}

// ConceptTotal is the amount moved under one concept.
type ConceptTotal struct {
	Concept model.Concept
	Total   decimal.Decimal
}

// Stats summarizes the current session for reporting consumers.
type Stats struct {
	Standings         []Standing
	TotalTransactions int
	Leader            *Standing // highest balance, first wins ties; nil with no players
	ByConcept         []ConceptTotal
}

// Stats derives the session summary, or nil without a current session.
// ByConcept is ranked by descending total; ties keep first-seen order.
func (s *Store) Stats() *Stats {
	sess := s.CurrentSession()
	if sess == nil {
		return nil
	}

	stats := &Stats{TotalTransactions: len(sess.Transactions)}

	for _, p := range sess.Players {
		stats.Standings = append(stats.Standings, Standing{
			Player:  p,
			Balance: s.Balance(p.ID),
		})
	}
	for i := range stats.Standings {
		if stats.Leader == nil || stats.Standings[i].Balance.GreaterThan(stats.Leader.Balance) {
			stats.Leader = &stats.Standings[i]
		}
	}

	totals := make(map[model.Concept]decimal.Decimal)
	var order []model.Concept
	for _, tx := range sess.Transactions {
		if _, seen := totals[tx.Concept]; !seen {
			order = append(order, tx.Concept)
		}
		totals[tx.Concept] = totals[tx.Concept].Add(tx.Amount)
	}
	for _, c := range order {
		stats.ByConcept = append(stats.ByConcept, ConceptTotal{Concept: c, Total: totals[c]})
	}
	sort.SliceStable(stats.ByConcept, func(i, j int) bool {
		return stats.ByConcept[i].Total.GreaterThan(stats.ByConcept[j].Total)
	})

	return stats
}
