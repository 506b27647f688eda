package commands

import (
	"github.com/spf13/cobra"
)

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the current game summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.store.Stats()
			if stats == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			cmd.Printf("Transactions: %d\n", stats.TotalTransactions)
			if stats.Leader != nil {
				cmd.Printf("Leader: %s %s with %s\n",
					stats.Leader.Player.Avatar, stats.Leader.Player.Name, stats.Leader.Balance)
			}
			if len(stats.Standings) > 0 {
				cmd.Println("Standings:")
				for _, st := range stats.Standings {
					cmd.Printf("  %s %s: %s\n", st.Player.Avatar, st.Player.Name, st.Balance)
				}
			}
			if len(stats.ByConcept) > 0 {
				cmd.Println("By concept:")
				for _, ct := range stats.ByConcept {
					cmd.Printf("  %s: %s\n", ct.Concept, ct.Total)
				}
			}
			return nil
		},
	}
}
