package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newGameCommand(a *app) *cobra.Command {
	gameCmd := &cobra.Command{
		Use:   "game",
		Short: "Manage game sessions",
	}
	gameCmd.AddCommand(
		newGameNewCommand(a),
		newGameListCommand(a),
		newGameUseCommand(a),
		newGameEndCommand(a),
		newGameDeleteCommand(a),
		newGameBackupCommand(a),
	)
	return gameCmd
}

func newGameNewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a game session and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.store.CreateSession(args[0])
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Created game %q (%s)\n", sess.Name, sess.ID)
			return nil
		},
	}
}

func newGameListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List game sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.store.Sessions()
			if len(sessions) == 0 {
				cmd.Println("No games yet")
				return nil
			}
			current := a.store.CurrentSession()
			for _, sess := range sessions {
				marker := " "
				if current != nil && sess.ID == current.ID {
					marker = "*"
				}
				status := "active"
				if sess.EndedAt != nil {
					status = "ended " + sess.EndedAt.Format(time.RFC3339)
				}
				cmd.Printf("%s %s (%s) started %s, %s, %d players, %d transactions\n",
					marker, sess.Name, sess.ID,
					sess.StartedAt.Format(time.RFC3339), status,
					len(sess.Players), len(sess.Transactions))
			}
			return nil
		},
	}
}

func newGameUseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Switch the current game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.SetCurrentSession(args[0]) {
				cmd.Printf("Unknown game %s, current game unchanged\n", args[0])
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Current game is now %s\n", args[0])
			return nil
		},
	}
}

func newGameEndCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "end [id]",
		Short: "End a game (defaults to the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) > 0 {
				sessionID = args[0]
			} else if sess := a.store.CurrentSession(); sess != nil {
				sessionID = sess.ID
			}
			if sessionID == "" {
				cmd.Println(noActiveGame)
				return nil
			}
			if !a.store.EndSession(sessionID) {
				cmd.Printf("Unknown game %s\n", sessionID)
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Ended game %s\n", sessionID)
			return nil
		},
	}
}

func newGameDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.DeleteSession(args[0]) {
				cmd.Printf("Unknown game %s\n", args[0])
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			cmd.Printf("Deleted game %s\n", args[0])
			return nil
		},
	}
}

func newGameBackupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <path>",
		Short: "Write the full state snapshot to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Save(args[0]); err != nil {
				return err
			}
			cmd.Printf("Backup written to %s\n", args[0])
			return nil
		},
	}
}
