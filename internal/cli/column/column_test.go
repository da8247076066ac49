package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/testutil"
)

func columnNames(t *testing.T, env *testutil.CLIEnv) []string {
	t.Helper()
	b := env.Data(t).Boards[0]
	names := make([]string, len(b.Columns))
	for i, col := range b.Columns {
		names[i] = col.Name
	}
	return names
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	calls := 0
	orig := cli.Confirm
	cli.Confirm = func(title, description string) (bool, error) {
		calls++
		return answer, nil
	}
	t.Cleanup(func() { cli.Confirm = orig })
	return &calls
}

// ============================================================================
// column add / rename
// ============================================================================

func TestColumnAdd(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "add", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	b := env.Data(t).Boards[0]
	require.Len(t, b.Columns, 5)
	assert.Equal(t, id, b.Columns[4].ID)
	assert.Equal(t, "New Column", b.Columns[4].Name)
	assert.Empty(t, b.Columns[4].Cards)
}

func TestColumnAdd_WithName(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "add", "--name", "Blocked", "--json")
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "Blocked", data["name"])
	assert.Equal(t, float64(4), data["position"])
	assert.Equal(t, []string{"To Do", "Doing", "In Review", "Done", "Blocked"}, columnNames(t, env))
}

func TestColumnRename(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "rename", "in review", "QA")
	require.NoError(t, err)
	assert.Contains(t, out, "Column renamed to 'QA'")
	assert.Equal(t, []string{"To Do", "Doing", "QA", "Done"}, columnNames(t, env))
}

func TestColumnRename_NotFound(t *testing.T) {
	testutil.SetupCLITest(t)

	_, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "rename", "Backlog", "QA")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

// ============================================================================
// column delete
// ============================================================================

func TestColumnDelete_Yes(t *testing.T) {
	env := testutil.SetupCLITest(t)
	calls := stubConfirm(t, false)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "delete", "Doing", "--yes", "--json")
	require.NoError(t, err)
	assert.Zero(t, *calls)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, true, data["deleted"])
	assert.Equal(t, float64(2), data["cards"])
	assert.Equal(t, []string{"To Do", "In Review", "Done"}, columnNames(t, env))
}

func TestColumnDelete_Confirmed(t *testing.T) {
	env := testutil.SetupCLITest(t)
	calls := stubConfirm(t, true)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "delete", "col-done")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Contains(t, out, "Column 'Done' deleted")
	assert.Equal(t, []string{"To Do", "Doing", "In Review"}, columnNames(t, env))
}

func TestColumnDelete_Cancelled(t *testing.T) {
	env := testutil.SetupCLITest(t)
	stubConfirm(t, false)

	out, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "delete", "Done")
	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled")
	assert.Len(t, env.Data(t).Boards[0].Columns, 4)
}

func TestColumnDelete_JSONNeedsYes(t *testing.T) {
	testutil.SetupCLITest(t)
	calls := stubConfirm(t, true)

	_, _, err := testutil.ExecuteCommand(t, ColumnCmd(), "delete", "Done", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Zero(t, *calls)
}

// ============================================================================
// column move
// ============================================================================

func TestColumnMove(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "to first position",
			args: []string{"move", "Done", "--to", "0"},
			want: []string{"Done", "To Do", "Doing", "In Review"},
		},
		{
			name: "over another column",
			args: []string{"move", "To Do", "--over", "In Review"},
			want: []string{"Doing", "In Review", "To Do", "Done"},
		},
		{
			name: "onto itself",
			args: []string{"move", "Doing", "--to", "1"},
			want: []string{"To Do", "Doing", "In Review", "Done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.SetupCLITest(t)

			_, _, err := testutil.ExecuteCommand(t, ColumnCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, columnNames(t, env))
		})
	}
}

func TestColumnMove_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no target", []string{"move", "Done"}},
		{"negative position", []string{"move", "Done", "--to", "-2"}},
		{"position out of range", []string{"move", "Done", "--to", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.SetupCLITest(t)

			_, _, err := testutil.ExecuteCommand(t, ColumnCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}
}
