package board

import (
	"regexp"
	"strings"
)

var inlineTagPattern = regexp.MustCompile(`(?s)^\[([^\]]*)\]\s*(.*)$`)

// ParseInlineTag splits "[tag] title" into its tag name and title. Input
// without a leading bracketed name comes back as the title with an empty
// tag name. Both parts are trimmed.
func ParseInlineTag(raw string) (tagName, title string) {
	raw = strings.TrimSpace(raw)
	m := inlineTagPattern.FindStringSubmatch(raw)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", raw
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}
