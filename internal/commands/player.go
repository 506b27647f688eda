package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/boardbank/banker/internal/ledger"
)

func newPlayerCommand(a *app) *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Manage players in the current game",
	}
	playerCmd.AddCommand(
		newPlayerAddCommand(a),
		newPlayerListCommand(a),
		newPlayerUpdateCommand(a),
		newPlayerRemoveCommand(a),
	)
	return playerCmd
}

func newPlayerAddCommand(a *app) *cobra.Command {
	var avatar, color string
	var balance int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a player to the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := ledger.PlayerParams{
				Name:           args[0],
				Avatar:         avatar,
				Color:          color,
				InitialBalance: decimal.NewFromInt(int64(balance)),
			}
			if params.Avatar == "" {
				params.Avatar = a.cfg.Defaults.Avatar
			}
			if params.Color == "" {
				params.Color = a.cfg.Defaults.Color
			}
			if balance <= 0 {
				params.InitialBalance = decimal.NewFromInt(int64(a.cfg.Defaults.InitialBalance))
			}
			p := a.store.AddPlayer(params)
			if p == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Added player %s %q (%s) starting at %s\n", p.Avatar, p.Name, p.ID, p.InitialBalance)
			return nil
		},
	}

	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar token")
	cmd.Flags().StringVar(&color, "color", "", "color token")
	cmd.Flags().IntVar(&balance, "balance", 0, "initial balance")

	return cmd
}

func newPlayerListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players with their derived balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.CurrentSession() == nil {
				cmd.Println(noActiveGame)
				return nil
			}
			players := a.store.Players()
			if len(players) == 0 {
				cmd.Println("No players yet")
				return nil
			}
			for _, p := range players {
				cmd.Printf("%s %s (%s): %s\n", p.Avatar, p.Name, p.ID, a.store.Balance(p.ID))
			}
			return nil
		},
	}
}

func newPlayerUpdateCommand(a *app) *cobra.Command {
	var name, avatar, color string
	var balance int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch ledger.PlayerUpdate
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("avatar") {
				patch.Avatar = &avatar
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("balance") {
				b := decimal.NewFromInt(int64(balance))
				patch.InitialBalance = &b
			}
			p := a.store.UpdatePlayer(args[0], patch)
			if p == nil {
				cmd.Printf("Unknown player %s\n", args[0])
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Updated player %q\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar token")
	cmd.Flags().StringVar(&color, "color", "", "color token")
	cmd.Flags().IntVar(&balance, "balance", 0, "initial balance")

	return cmd
}

func newPlayerRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a player (their transactions are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.DeletePlayer(args[0]) {
				cmd.Printf("Unknown player %s\n", args[0])
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Removed player %s\n", args[0])
			return nil
		},
	}
}
