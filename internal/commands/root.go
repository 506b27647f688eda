// Package commands wires the ledger, codec and config packages into the
// banker CLI. Commands load the snapshot, run one store operation, save
// and print; business logic lives elsewhere.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardbank/banker/internal/buildinfo"
	"github.com/boardbank/banker/internal/config"
	"github.com/boardbank/banker/internal/ledger"
	"github.com/boardbank/banker/internal/log"
)

// app carries the shared state commands operate on.
type app struct {
	configPath string
	logger     *log.Logger
	cfg        *config.Config
	store      *ledger.Store
}

// open loads the config and re-hydrates the store from its snapshot.
func (a *app) open() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.store = ledger.Load(cfg.Data.Snapshot, a.logger.WithComponent(log.ComponentSnapshot))
	return nil
}

// save flushes the store back to its snapshot.
func (a *app) save() error {
	return a.store.Save(a.cfg.Data.Snapshot)
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	a := &app{logger: log.New(log.DefaultConfig())}

	rootCmd := &cobra.Command{
		Use:     "banker",
		Short:   "Board game money tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file path")

	rootCmd.AddCommand(
		newGameCommand(a),
		newPlayerCommand(a),
		newTxCommand(a),
		newImportCommand(a),
		newExportCommand(a),
		newStatsCommand(a),
	)

	return rootCmd
}

// noActiveGame is the message for session-scoped commands run without a
// current session. They print it and succeed; missing state is not an
// error.
const noActiveGame = "no active game (create one with 'banker game new')"
