package gamecsv

import (
	"strings"

	"github.com/boardbank/banker/internal/ledger"
	"github.com/boardbank/banker/internal/log"
	"github.com/boardbank/banker/internal/model"
)

// bankNames are the spellings that resolve to the bank sentinel instead of
// creating a player.
var bankNames = map[string]bool{"bank": true, "banca": true}

// defaultParticipant is used when a row has no resolvable source or
// destination name.
const defaultParticipant = "Bank"

// Result reports the outcome of one import batch.
type Result struct {
	Imported       int  // rows committed as transactions
	Skipped        int  // rows dropped for zero/invalid amount
	PlayersCreated int  // players created on the fly
	Empty          bool // no header row plus data row found
}

// Importer applies parsed CSV rows to a ledger store.
type Importer struct {
	store  *ledger.Store
	logger *log.Logger
}

// NewImporter creates an Importer writing into store.
func NewImporter(store *ledger.Store, logger *log.Logger) *Importer {
	return &Importer{store: store, logger: logger.WithComponent(log.ComponentCSV)}
}

// Import parses text and applies every usable row to the current session.
// Player names resolve case-insensitively against existing players; unknown
// names create a player with defaults, and the mapping extends so the same
// name maps to the same new player for the rest of the batch. A row only
// commits when its amount is strictly positive; everything else is skipped,
// never a batch failure.
func (im *Importer) Import(text string) Result {
	doc := Parse(text)
	if len(doc.Rows) == 0 {
		return Result{Empty: true}
	}
	if im.store.CurrentSession() == nil {
		return Result{}
	}

	columns := inferColumns(doc.Headers)

	nameToID := make(map[string]string)
	for _, p := range im.store.Players() {
		nameToID[strings.ToLower(p.Name)] = p.ID
	}

	var result Result
	for _, row := range doc.Rows {
		fromID := im.resolveParticipant(cell(row, columns, colFrom), nameToID, &result)
		toID := im.resolveParticipant(cell(row, columns, colTo), nameToID, &result)

		amount := parseAmount(cell(row, columns, colAmount))
		if amount.Sign() <= 0 {
			result.Skipped++
			continue
		}

		concept := model.Concept(cell(row, columns, colConcept))
		if concept == "" {
			concept = model.ConceptOther
		}

		im.store.AddTransaction(ledger.TransactionDraft{
			Timestamp:  parseTimestamp(cell(row, columns, colTimestamp)),
			FromPlayer: fromID,
			ToPlayer:   toID,
			Concept:    concept,
			Amount:     amount,
			Property:   cell(row, columns, colProperty),
			ColorGroup: model.ColorGroup(cell(row, columns, colColor)),
			Houses:     parseHouses(cell(row, columns, colHouses)),
			Hotel:      parseHotel(cell(row, columns, colHotel)),
			Notes:      cell(row, columns, colNotes),
		})
		result.Imported++
	}

	im.logger.Info("csv import finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"players_created", result.PlayersCreated)
	return result
}

// resolveParticipant maps a display name to a participant id, creating a
// player when the name is unknown and not a bank spelling.
func (im *Importer) resolveParticipant(name string, nameToID map[string]string, result *Result) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultParticipant
	}
	key := strings.ToLower(name)
	if bankNames[key] {
		return model.BankID
	}
	if playerID, ok := nameToID[key]; ok {
		return playerID
	}
	p := im.store.AddPlayer(ledger.PlayerParams{Name: name})
	if p == nil {
		return model.BankID
	}
	nameToID[key] = p.ID
	result.PlayersCreated++
	return p.ID
}

// cell returns the row value for a logical column, or "" when the column
// was not inferred or the row is short.
func cell(row []string, columns map[string]int, column string) string {
	idx, ok := columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
