package commands

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/boardbank/banker/internal/ledger"
	"github.com/boardbank/banker/internal/model"
)

func newTxCommand(a *app) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions in the current game",
	}
	txCmd.AddCommand(
		newTxAddCommand(a),
		newTxListCommand(a),
		newTxRemoveCommand(a),
	)
	return txCmd
}

// resolveParticipant turns a CLI argument into a participant id: bank
// spellings map to the sentinel, then player ids, then case-insensitive
// names. Anything else passes through as-is; the store tolerates dangling
// ids.
func resolveParticipant(store *ledger.Store, arg string) string {
	if strings.EqualFold(arg, "bank") || strings.EqualFold(arg, "banca") {
		return model.BankID
	}
	for _, p := range store.Players() {
		if p.ID == arg || strings.EqualFold(p.Name, arg) {
			return p.ID
		}
	}
	return arg
}

func newTxAddCommand(a *app) *cobra.Command {
	var from, to, amount, concept, property, color, notes, when string
	var houses int
	var hotel bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				amt = decimal.Zero
			}
			var ts time.Time
			if when != "" {
				ts, _ = time.Parse(time.RFC3339, when)
			}
			tx := a.store.AddTransaction(ledger.TransactionDraft{
				Timestamp:  ts,
				FromPlayer: resolveParticipant(a.store, from),
				ToPlayer:   resolveParticipant(a.store, to),
				Concept:    model.Concept(concept),
				Amount:     amt,
				Property:   property,
				ColorGroup: model.ColorGroup(color),
				Houses:     houses,
				Hotel:      hotel,
				Notes:      notes,
			})
			if tx == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Recorded %s: %s -> %s, %s (%s)\n",
				tx.Concept, a.store.DisplayName(tx.FromPlayer),
				a.store.DisplayName(tx.ToPlayer), tx.Amount, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "bank", "source player (id, name or bank)")
	cmd.Flags().StringVar(&to, "to", "bank", "destination player (id, name or bank)")
	cmd.Flags().StringVar(&amount, "amount", "0", "amount")
	cmd.Flags().StringVar(&concept, "concept", string(model.ConceptOther), "concept")
	cmd.Flags().StringVar(&property, "property", "", "property name")
	cmd.Flags().StringVar(&color, "color-group", "", "property color group")
	cmd.Flags().IntVar(&houses, "houses", 0, "house count")
	cmd.Flags().BoolVar(&hotel, "hotel", false, "hotel involved")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&when, "time", "", "timestamp (RFC 3339, defaults to now)")

	return cmd
}

func newTxListCommand(a *app) *cobra.Command {
	var player, concept, color, search, sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.CurrentSession() == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			txs := ledger.FilterTransactions(a.store.Transactions(), ledger.Filter{
				PlayerID:   resolveParticipant(a.store, player),
				Concept:    model.Concept(concept),
				ColorGroup: model.ColorGroup(color),
				SearchText: search,
			})
			direction := ledger.Ascending
			if desc {
				direction = ledger.Descending
			}
			txs = ledger.SortTransactions(txs, ledger.SortColumn(sortBy), direction)
			if len(txs) == 0 {
				cmd.Println("No transactions")
				return nil
			}
			for _, tx := range txs {
				line := tx.Timestamp.Format(time.RFC3339) + "  " +
					a.store.DisplayName(tx.FromPlayer) + " -> " +
					a.store.DisplayName(tx.ToPlayer) + "  " +
					string(tx.Concept) + "  " + tx.Amount.String()
				if tx.Property != "" {
					line += "  [" + tx.Property + "]"
				}
				cmd.Printf("%s  (%s)\n", line, tx.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "only transactions involving this player")
	cmd.Flags().StringVar(&concept, "concept", "", "only this concept")
	cmd.Flags().StringVar(&color, "color-group", "", "only this color group")
	cmd.Flags().StringVar(&search, "search", "", "substring match on concept, property or notes")
	cmd.Flags().StringVar(&sortBy, "sort", string(ledger.SortByTimestamp), "sort column")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func newTxRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.DeleteTransaction(args[0]) {
				cmd.Printf("Unknown transaction %s\n", args[0])
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Deleted transaction %s\n", args[0])
			return nil
		},
	}
}
