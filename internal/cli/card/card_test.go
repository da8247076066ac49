package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbanned/internal/cli"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/testutil"
)

func cardIDs(col models.Column) []string {
	ids := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		ids[i] = c.ID
	}
	return ids
}

// ============================================================================
// card add
// ============================================================================

func TestCardAdd(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "add", "to do", "Write release notes", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	b := env.Data(t).Boards[0]
	todo := b.Columns[0]
	require.Len(t, todo.Cards, 4)
	added := todo.Cards[3]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, "Write release notes", added.Title)
	assert.Equal(t, models.PriorityLow, added.Priority)
	assert.Empty(t, added.TagID)
}

func TestCardAdd_WithFlags(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "add", "col-doing", "Ship it",
		"--priority", "HIGH", "--description", "## Steps", "--json")
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "Ship it", data["title"])
	assert.Equal(t, "high", data["priority"])
	assert.Equal(t, "col-doing", data["column_id"])
	assert.Equal(t, float64(2), data["position"])

	added := env.Data(t).Boards[0].Columns[1].Cards[2]
	assert.Equal(t, "## Steps", added.Description)
}

func TestCardAdd_InlineTagCreatedThenReused(t *testing.T) {
	env := testutil.SetupCLITest(t)

	_, _, err := testutil.ExecuteCommand(t, CardCmd(), "add", "To Do", "[urgent] Fix login")
	require.NoError(t, err)
	_, _, err = testutil.ExecuteCommand(t, CardCmd(), "add", "To Do", "[URGENT] Fix logout")
	require.NoError(t, err)

	b := env.Data(t).Boards[0]
	require.Len(t, b.Tags, 3)
	urgent := b.Tags[2]
	assert.Equal(t, "urgent", urgent.Name)

	cards := b.Columns[0].Cards
	require.Len(t, cards, 5)
	assert.Equal(t, "Fix login", cards[3].Title)
	assert.Equal(t, "Fix logout", cards[4].Title)
	assert.Equal(t, urgent.ID, cards[3].TagID)
	assert.Equal(t, urgent.ID, cards[4].TagID)
}

func TestCardAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"blank title", []string{"add", "To Do", "   "}, cli.ExitValidation},
		{"bad priority", []string{"add", "To Do", "x", "--priority", "urgent"}, cli.ExitValidation},
		{"unknown column", []string{"add", "Backlog", "x"}, cli.ExitNotFound},
		{"missing title", []string{"add", "To Do"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.SetupCLITest(t)

			_, _, err := testutil.ExecuteCommand(t, CardCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
			assert.Len(t, env.Data(t).Boards[0].Columns[0].Cards, 3)
		})
	}
}

// ============================================================================
// card edit / delete
// ============================================================================

func TestCardEdit(t *testing.T) {
	env := testutil.SetupCLITest(t)

	_, _, err := testutil.ExecuteCommand(t, CardCmd(), "edit", "card-2", "--title", "Delete node_modules", "--priority", "high")
	require.NoError(t, err)

	card := env.Data(t).Boards[0].Card("card-2")
	require.NotNil(t, card)
	assert.Equal(t, "Delete node_modules", card.Title)
	assert.Equal(t, models.PriorityHigh, card.Priority)
}

func TestCardEdit_NothingToChange(t *testing.T) {
	testutil.SetupCLITest(t)

	_, _, err := testutil.ExecuteCommand(t, CardCmd(), "edit", "card-2")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCardDelete(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "delete", "mass touched grass")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted from Done")

	b := env.Data(t).Boards[0]
	assert.Nil(t, b.Card("card-8"))
	assert.Equal(t, []string{"card-7"}, cardIDs(b.Columns[3]))
}

// ============================================================================
// card move
// ============================================================================

func TestCardMove_ToUntaggedZoneClearsTag(t *testing.T) {
	env := testutil.SetupCLITest(t)

	_, errOut, err := testutil.ExecuteCommand(t, CardCmd(), "move", "card-1", "--column", "Doing", "--untagged")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(errOut, "Tag 'bug' removed"))

	b := env.Data(t).Boards[0]
	assert.Equal(t, []string{"card-2", "card-3"}, cardIDs(b.Columns[0]))
	assert.Equal(t, []string{"card-4", "card-5", "card-1"}, cardIDs(b.Columns[1]))
	assert.Empty(t, b.Card("card-1").TagID)
}

func TestCardMove_ToColumnKeepsTag(t *testing.T) {
	env := testutil.SetupCLITest(t)

	_, errOut, err := testutil.ExecuteCommand(t, CardCmd(), "move", "card-1", "--column", "Done")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "Tag")

	b := env.Data(t).Boards[0]
	assert.Equal(t, []string{"card-7", "card-8", "card-1"}, cardIDs(b.Columns[3]))
	assert.Equal(t, "tag-bug", b.Card("card-1").TagID)
}

func TestCardMove_ToTagZoneInSameColumn(t *testing.T) {
	env := testutil.SetupCLITest(t)

	_, errOut, err := testutil.ExecuteCommand(t, CardCmd(), "move", "card-2", "--tag", "feature")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Tag 'feature' applied")

	b := env.Data(t).Boards[0]
	assert.Equal(t, []string{"card-1", "card-2", "card-3"}, cardIDs(b.Columns[0]))
	assert.Equal(t, "tag-feature", b.Card("card-2").TagID)
}

func TestCardMove_BeforeCardInOtherColumn(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, errOut, err := testutil.ExecuteCommand(t, CardCmd(), "move", "card-4", "--before", "card-2", "--json")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "col-todo", data["column_id"])
	assert.Equal(t, float64(1), data["position"])

	b := env.Data(t).Boards[0]
	assert.Equal(t, []string{"card-1", "card-4", "card-2", "card-3"}, cardIDs(b.Columns[0]))
}

func TestCardMove_OntoItself(t *testing.T) {
	env := testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "move", "card-2", "--before", "card-2")
	require.NoError(t, err)
	assert.Contains(t, out, "did not move")
	assert.Equal(t, []string{"card-1", "card-2", "card-3"}, cardIDs(env.Data(t).Boards[0].Columns[0]))
}

func TestCardMove_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no target", []string{"move", "card-1"}},
		{"before with column", []string{"move", "card-1", "--before", "card-2", "--column", "Doing"}},
		{"tag with untagged", []string{"move", "card-1", "--tag", "bug", "--untagged"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.SetupCLITest(t)

			_, _, err := testutil.ExecuteCommand(t, CardCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}
}

// ============================================================================
// card show
// ============================================================================

func TestCardShow(t *testing.T) {
	env := testutil.SetupCLITest(t)
	_, _, err := testutil.ExecuteCommand(t, CardCmd(), "edit", "card-5", "--description", "Try **:wq** first")
	require.NoError(t, err)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "show", "card-5")
	require.NoError(t, err)
	for _, want := range []string{"Googling how to exit Vim", "[bug]", "Doing", "high", "Description", ":wq"} {
		assert.Contains(t, out, want)
	}
	assert.NotNil(t, env.Data(t).Boards[0].Card("card-5"))
}

func TestCardShow_JSON(t *testing.T) {
	testutil.SetupCLITest(t)

	out, _, err := testutil.ExecuteCommand(t, CardCmd(), "show", "card-3", "--json")
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "card-3", data["id"])
	assert.Equal(t, "tag-feature", data["tagId"])
	assert.Equal(t, "feature", data["tag_name"])
	assert.Equal(t, "To Do", data["column_name"])
}
