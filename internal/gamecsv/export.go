package gamecsv

import (
	"strconv"
	"strings"
	"time"

	"github.com/boardbank/banker/internal/ledger"
	"github.com/boardbank/banker/internal/model"
)

// exportHeaders is the canonical column order. Each header normalizes to a
// recognized import alias, so a canonical export always round-trips.
var exportHeaders = []string{
	"Timestamp", "From", "To", "Concept", "Amount",
	"Property", "ColorGroup", "Houses", "Hotel", "Notes",
}

// Export renders the current session's transactions as CSV: one header
// row, then one row per transaction with every field quoted (embedded
// quotes doubled, RFC 4180). Participant ids that no longer resolve render
// as the bank.
func Export(store *ledger.Store) string {
	lines := []string{strings.Join(exportHeaders, ",")}
	for _, tx := range store.Transactions() {
		lines = append(lines, exportRow(store, tx))
	}
	return strings.Join(lines, "\n") + "\n"
}

func exportRow(store *ledger.Store, tx model.Transaction) string {
	hotel := "No"
	if tx.Hotel {
		hotel = "Yes"
	}
	fields := []string{
		tx.Timestamp.UTC().Format(time.RFC3339),
		displayName(store, tx.FromPlayer),
		displayName(store, tx.ToPlayer),
		string(tx.Concept),
		tx.Amount.String(),
		tx.Property,
		string(tx.ColorGroup),
		strconv.Itoa(tx.Houses),
		hotel,
		tx.Notes,
	}
	for i, f := range fields {
		fields[i] = quote(f)
	}
	return strings.Join(fields, ",")
}

func displayName(store *ledger.Store, playerID string) string {
	if p, ok := store.PlayerByID(playerID); ok {
		return p.Name
	}
	return model.Bank().Name
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
