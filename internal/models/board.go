// Package models defines the persisted kanban tree: boards own tags and
// columns, columns own cards, and cards reference tags by id.
package models

import (
	"fmt"
	"strings"
)

// Priority represents a card priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority maps a case-insensitive priority name to a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// AppData is the root of the persisted tree
type AppData struct {
	Version int     `json:"version"`
	Boards  []Board `json:"boards"`
}

// Board is a workspace of ordered columns plus the tags its cards can use
type Board struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Emoji   string   `json:"emoji,omitempty"`
	Tags    []Tag    `json:"tags"`
	Columns []Column `json:"columns"`
}

// Tag is a named, colored label scoped to one board
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#EF4444")
}

// Column is an ordered list of cards. Card order is the persisted sort order.
type Column struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Card is a single task on the board
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	TagID       string   `json:"tagId,omitempty"` // empty means untagged
}

// CardLocation identifies where a card sits inside a board
type CardLocation struct {
	ColumnIndex int
	CardIndex   int
}

// Board returns the board with the given id, or nil
func (d *AppData) Board(id string) *Board {
	for i := range d.Boards {
		if d.Boards[i].ID == id {
			return &d.Boards[i]
		}
	}
	return nil
}

// BoardIndex returns the index of the board with the given id, or -1
func (d *AppData) BoardIndex(id string) int {
	for i := range d.Boards {
		if d.Boards[i].ID == id {
			return i
		}
	}
	return -1
}

// IsColumnID reports whether id names one of the board's columns
func (b *Board) IsColumnID(id string) bool {
	return b.ColumnIndex(id) >= 0
}

// ColumnIndex returns the position of the column with the given id, or -1
func (b *Board) ColumnIndex(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id, or nil
func (b *Board) Column(id string) *Column {
	if i := b.ColumnIndex(id); i >= 0 {
		return &b.Columns[i]
	}
	return nil
}

// FindCard locates a card across all columns of the board
func (b *Board) FindCard(id string) (CardLocation, bool) {
	for ci := range b.Columns {
		if idx := b.Columns[ci].CardIndex(id); idx >= 0 {
			return CardLocation{ColumnIndex: ci, CardIndex: idx}, true
		}
	}
	return CardLocation{}, false
}

// Card returns the card with the given id, or nil
func (b *Board) Card(id string) *Card {
	loc, ok := b.FindCard(id)
	if !ok {
		return nil
	}
	return &b.Columns[loc.ColumnIndex].Cards[loc.CardIndex]
}

// Tag returns the tag with the given id, or nil
func (b *Board) Tag(id string) *Tag {
	for i := range b.Tags {
		if b.Tags[i].ID == id {
			return &b.Tags[i]
		}
	}
	return nil
}

// TagByName finds a tag by case-insensitive, whitespace-trimmed name
func (b *Board) TagByName(name string) *Tag {
	name = strings.TrimSpace(name)
	for i := range b.Tags {
		if strings.EqualFold(strings.TrimSpace(b.Tags[i].Name), name) {
			return &b.Tags[i]
		}
	}
	return nil
}

// ResolveTag returns the tag a card points at. Dangling and empty ids
// resolve to nil, which callers treat as "no tag".
func (b *Board) ResolveTag(tagID string) *Tag {
	if tagID == "" {
		return nil
	}
	return b.Tag(tagID)
}

// CardCount returns the number of cards across all columns
func (b *Board) CardCount() int {
	n := 0
	for i := range b.Columns {
		n += len(b.Columns[i].Cards)
	}
	return n
}

// CardIndex returns the position of the card with the given id, or -1
func (c *Column) CardIndex(id string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// Title returns the board name with its emoji, if any
func (b *Board) Title() string {
	if b.Emoji == "" {
		return b.Name
	}
	return b.Emoji + " " + b.Name
}
