package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/cli/handler"
	"github.com/thenoetrevino/kanbanned/internal/cli/styles"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card>",
		Short: "Show a card with its description rendered as Markdown",
		Long: `Show a card, found by id or case-insensitive title.

Examples:
  kanbanned card show card-1
  kanbanned card show "Read the documentation" --json
`,
		RunE: handler.SimpleCommand(&showHandler{}),
	}

	handler.AddBoardFlag(cmd)
	handler.AddOutputFlags(cmd)

	return cmd
}

// showHandler implements handler.Handler for showing a card
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := handler.RequireArgs(args.Args, 1, "a card"); err != nil {
		return nil, err
	}
	b, err := args.Board()
	if err != nil {
		return nil, err
	}
	found, err := board.FindCard(b, args.Args[0])
	if err != nil {
		return nil, err
	}
	r, err := locate(b, found.ID)
	if err != nil {
		return nil, err
	}

	detail := &cardDetail{cardResult: r}
	if tag := b.ResolveTag(r.TagID); tag != nil {
		detail.tagChip = styles.RenderTagChip(tag)
	}
	return detail, nil
}

// cardDetail is the full human-readable view of one card
type cardDetail struct {
	*cardResult
	tagChip string
}

// Render implements cli.Renderer
func (d *cardDetail) Render() string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render(d.Title))
	if d.tagChip != "" {
		sb.WriteString(" " + d.tagChip)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(d.ID))
	fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("Column:"), styles.ValueStyle.Render(d.ColumnName))
	fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("Priority:"), styles.ValueStyle.Render(string(d.Priority)))

	sb.WriteString(styles.SectionStyle.Render("Description"))
	sb.WriteString("\n")
	sb.WriteString(renderMarkdown(d.Description, styles.CardWidth))

	return styles.RenderCard(strings.TrimRight(sb.String(), "\n"))
}

// renderMarkdown renders a description with glamour, falling back to the
// raw text if rendering fails
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return styles.SubtitleStyle.Render("No description")
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-8),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
