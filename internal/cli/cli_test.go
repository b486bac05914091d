package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `[
  {"id": 1, "title": "Buy milk", "description": "Get **2%** milk", "completed": false, "lastUpdated": "2024-07-01T09:00:00.000Z"},
  {"id": 2, "title": "Write report", "description": "Q2 numbers", "completed": false, "lastUpdated": "2024-07-02T03:00:00.000Z"},
  {"id": 3, "title": "Call the plumber", "description": "Kitchen sink", "completed": true, "lastUpdated": "2024-07-02T18:00:00.000Z"}
]`

// runCmd executes the command tree against a temp config, seed and log dir.
// args[0] is the command; flags given after it win over the defaults.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"TASKTRACK_SEED", "TASKTRACK_URL", "TASKTRACK_LOG_DIR", "TASKTRACK_LOG_LEVEL", "TASKTRACK_DAY_TIMEZONE", "TASKTRACK_TOAST_SECONDS"} {
		t.Setenv(env, "")
	}
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	seedPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level = \"debug\"\n"), 0644))
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0644))

	base := []string{"--config", configPath, "--seed", seedPath, "--log-dir", filepath.Join(dir, "logs")}
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	full := append([]string{args[0]}, base...)
	cmd.SetArgs(append(full, args[1:]...))

	err := cmd.Execute()
	return out.String(), err
}

func TestList_AllTasks(t *testing.T) {
	out, err := runCmd(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "[1]   Buy milk  (2024-07-01 09:00)")
	assert.Contains(t, out, "[2]   Write report  (2024-07-02 03:00)")
	assert.Contains(t, out, "[3] x Call the plumber  (2024-07-02 18:00)")
	assert.Contains(t, out, "3 task(s), 1 done")
	assert.NotContains(t, out, "Kitchen sink")
}

func TestList_Search(t *testing.T) {
	out, err := runCmd(t, "list", "--search", "MILK")
	require.NoError(t, err)

	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "Write report")
	assert.Contains(t, out, "1 task(s), 0 done")
}

func TestList_SearchFromURL(t *testing.T) {
	out, err := runCmd(t, "list", "--url", "/?search=sink")
	require.NoError(t, err)

	assert.Contains(t, out, "Call the plumber")
	assert.NotContains(t, out, "Buy milk")
}

func TestList_SearchFlagOverridesURL(t *testing.T) {
	out, err := runCmd(t, "list", "--url", "/?search=sink", "--search", "report")
	require.NoError(t, err)

	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Call the plumber")
}

func TestList_DateFilter(t *testing.T) {
	out, err := runCmd(t, "list", "--date", "2024-07-02")
	require.NoError(t, err)

	assert.NotContains(t, out, "Buy milk")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Call the plumber")
}

func TestList_DateFilterInTimezone(t *testing.T) {
	out, err := runCmd(t, "list", "--date", "2024-07-01", "--timezone", "America/Los_Angeles")
	require.NoError(t, err)

	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "[2]   Write report  (2024-07-01 20:00)")
	assert.NotContains(t, out, "Call the plumber")
}

func TestList_AllDetails(t *testing.T) {
	out, err := runCmd(t, "list", "--search", "milk", "--all-details")
	require.NoError(t, err)

	assert.Contains(t, out, "        Get 2% milk")
}

func TestList_NoMatches(t *testing.T) {
	out, err := runCmd(t, "list", "--search", "nothing like this")
	require.NoError(t, err)

	assert.Equal(t, "No tasks found.\n", out)
}

func TestList_InvalidDate(t *testing.T) {
	_, err := runCmd(t, "list", "--date", "07/02/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestList_InvalidTimezone(t *testing.T) {
	_, err := runCmd(t, "list", "--timezone", "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestList_MissingSeed(t *testing.T) {
	_, err := runCmd(t, "list", "--seed", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seed")
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tasktrack test\n", out)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := runCmd(t, "unknown-command")
	assert.Error(t, err)
}
