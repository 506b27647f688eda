package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boardbank/banker/internal/gamecsv"
)

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file into the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if a.store.CurrentSession() == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			result := gamecsv.NewImporter(a.store, a.logger).Import(string(data))
			if result.Empty {
				cmd.Println("CSV file is empty, nothing imported")
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Imported %d transactions (%d skipped, %d players created)\n",
				result.Imported, result.Skipped, result.PlayersCreated)
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export the current game's transactions as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.CurrentSession() == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			if len(a.store.Transactions()) == 0 {
				cmd.Println("No transactions to export")
				return nil
			}
			out := gamecsv.Export(a.store)
			path := "transactions.csv"
			if len(args) > 0 {
				path = args[0]
			}
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.Printf("Exported %d transactions to %s\n", len(a.store.Transactions()), path)
			return nil
		},
	}
}
