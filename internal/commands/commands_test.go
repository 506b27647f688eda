package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardbank/banker/internal/commands"
	"github.com/boardbank/banker/internal/config"
)

// runBanker executes the CLI in-process. Each call builds a fresh command
// tree, so state only survives through the snapshot file.
func runBanker(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func setupSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "banker.json")
	t.Setenv(config.EnvSnapshot, path)
	return path
}

func TestWorkflow_GamePlayersTransactions(t *testing.T) {
	snapshot := setupSnapshot(t)

	out, err := runBanker(t, "game", "new", "Friday night")
	require.NoError(t, err)
	assert.Contains(t, out, `Created game "Friday night"`)
	_, err = os.Stat(snapshot)
	require.NoError(t, err, "snapshot persisted")

	out, err = runBanker(t, "player", "add", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, `Added player`)

	out, err = runBanker(t, "tx", "add", "--from", "bank", "--to", "Ana", "--amount", "200", "--concept", "Salary")
	require.NoError(t, err)
	assert.Contains(t, out, "Salary")

	out, err = runBanker(t, "player", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1700", "1500 initial + 200 salary")

	out, err = runBanker(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Transactions: 1")
	assert.Contains(t, out, "Leader:")
	assert.Contains(t, out, "Ana")
}

func TestWorkflow_NoActiveGameIsNotAnError(t *testing.T) {
	setupSnapshot(t)

	for _, args := range [][]string{
		{"player", "add", "Ana"},
		{"player", "list"},
		{"tx", "add", "--to", "Ana", "--amount", "10"},
		{"tx", "list"},
		{"stats"},
		{"export"},
	} {
		out, err := runBanker(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Contains(t, out, "no active game", "args %v", args)
	}
}

func TestWorkflow_ExportImport(t *testing.T) {
	setupSnapshot(t)
	dir := t.TempDir()

	_, err := runBanker(t, "game", "new", "Friday")
	require.NoError(t, err)
	_, err = runBanker(t, "player", "add", "Ana")
	require.NoError(t, err)
	_, err = runBanker(t, "tx", "add", "--from", "bank", "--to", "Ana", "--amount", "150", "--concept", "Rent")
	require.NoError(t, err)

	exportPath := filepath.Join(dir, "out.csv")
	out, err := runBanker(t, "export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 transactions")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Timestamp,From,To,Concept,Amount,Property,ColorGroup,Houses,Hotel,Notes", lines[0])
	assert.Contains(t, lines[1], `"Bank","Ana","Rent","150"`)

	out, err = runBanker(t, "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 transactions")

	out, err = runBanker(t, "player", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1800", "two rent payments on top of 1500")
}

func TestWorkflow_ImportEmptyFile(t *testing.T) {
	setupSnapshot(t)
	dir := t.TempDir()

	_, err := runBanker(t, "game", "new", "Friday")
	require.NoError(t, err)

	emptyPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyPath, []byte("Origen,Destino,Monto\n"), 0o644))

	out, err := runBanker(t, "import", emptyPath)
	require.NoError(t, err)
	assert.Contains(t, out, "empty")

	out, err = runBanker(t, "tx", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions")
}

func TestWorkflow_GameUseAndDelete(t *testing.T) {
	setupSnapshot(t)

	out, err := runBanker(t, "game", "new", "First")
	require.NoError(t, err)
	firstID := extractID(t, out)

	_, err = runBanker(t, "game", "new", "Second")
	require.NoError(t, err)

	out, err = runBanker(t, "game", "use", "bogus")
	require.NoError(t, err)
	assert.Contains(t, out, "Unknown game")

	out, err = runBanker(t, "game", "use", firstID)
	require.NoError(t, err)
	assert.Contains(t, out, "Current game is now")

	out, err = runBanker(t, "game", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* First")

	out, err = runBanker(t, "game", "delete", firstID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted game")

	out, err = runBanker(t, "game", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* Second", "first remaining game became current")
}

// extractID pulls the parenthesized id out of "Created game \"X\" (<id>)".
func extractID(t *testing.T, out string) string {
	t.Helper()
	start := strings.LastIndex(out, "(")
	end := strings.LastIndex(out, ")")
	require.True(t, start >= 0 && end > start, "no id in output %q", out)
	return out[start+1 : end]
}
