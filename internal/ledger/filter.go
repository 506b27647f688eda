package ledger

import (
	"sort"
	"strings"

	"github.com/boardbank/banker/internal/model"
)

// Filter selects transactions. Zero-valued fields impose no constraint;
// set fields are ANDed together.
type Filter struct {
	PlayerID   string           // matches source or destination
	Concept    model.Concept    // exact match
	ColorGroup model.ColorGroup // exact match
	SearchText string           // case-insensitive substring of concept, property or notes
}

// FilterTransactions returns the transactions matching f, preserving the
// input order.
func FilterTransactions(txs []model.Transaction, f Filter) []model.Transaction {
	var out []model.Transaction
	search := strings.ToLower(f.SearchText)
	for _, tx := range txs {
		if f.PlayerID != "" && tx.FromPlayer != f.PlayerID && tx.ToPlayer != f.PlayerID {
			continue
		}
		if f.Concept != "" && tx.Concept != f.Concept {
			continue
		}
		if f.ColorGroup != "" && tx.ColorGroup != f.ColorGroup {
			continue
		}
		if search != "" && !matchesSearch(tx, search) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesSearch(tx model.Transaction, search string) bool {
	if strings.Contains(strings.ToLower(string(tx.Concept)), search) {
		return true
	}
	if tx.Property != "" && strings.Contains(strings.ToLower(tx.Property), search) {
		return true
	}
	if tx.Notes != "" && strings.Contains(strings.ToLower(tx.Notes), search) {
		return true
	}
	return false
}

// SortColumn names a sortable transaction field.
type SortColumn string

const (
	SortByTimestamp  SortColumn = "timestamp"
	SortByFrom       SortColumn = "from"
	SortByTo         SortColumn = "to"
	SortByConcept    SortColumn = "concept"
	SortByAmount     SortColumn = "amount"
	SortByProperty   SortColumn = "property"
	SortByColorGroup SortColumn = "colorGroup"
	SortByHouses     SortColumn = "houses"
)

// SortDirection is the sort order.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortTransactions returns a sorted copy of txs. The sort is stable: equal
// keys keep their original relative order in both directions. Timestamp and
// amount compare by temporal/numeric value, not lexically.
func SortTransactions(txs []model.Transaction, column SortColumn, direction SortDirection) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	less := lessFunc(column)
	sort.SliceStable(out, func(i, j int) bool {
		if direction == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(column SortColumn) func(a, b model.Transaction) bool {
	switch column {
	case SortByTimestamp:
		return func(a, b model.Transaction) bool { return a.Timestamp.Before(b.Timestamp) }
	case SortByAmount:
		return func(a, b model.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByHouses:
		return func(a, b model.Transaction) bool { return a.Houses < b.Houses }
	case SortByFrom:
		return func(a, b model.Transaction) bool { return a.FromPlayer < b.FromPlayer }
	case SortByTo:
		return func(a, b model.Transaction) bool { return a.ToPlayer < b.ToPlayer }
	case SortByProperty:
		return func(a, b model.Transaction) bool { return a.Property < b.Property }
	case SortByColorGroup:
		return func(a, b model.Transaction) bool { return a.ColorGroup < b.ColorGroup }
	default:
		return func(a, b model.Transaction) bool { return a.Concept < b.Concept }
	}
}
