// Package schema turns untrusted decoded storage content into a valid
// AppData. It repairs what it can field by field, discards entities that
// lack an id, and reports both so callers can tell the user what happened.
package schema

import (
	"encoding/json"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// Counts tallies entities per level of the tree
type Counts struct {
	Cards   int `json:"cards"`
	Columns int `json:"columns"`
	Boards  int `json:"boards"`
}

// Total returns the sum across all levels
func (c Counts) Total() int {
	return c.Cards + c.Columns + c.Boards
}

// LoadResult is the outcome of loading and repairing persisted data
type LoadResult struct {
	Data         models.AppData `json:"data"`
	Discarded    Counts         `json:"discarded"`
	Recovered    Counts         `json:"recovered"`
	UsedDefaults bool           `json:"usedDefaults"`
}

// Defaults returns a result holding the built-in data set and zero counts
func Defaults(usedDefaults bool) LoadResult {
	return LoadResult{Data: models.DefaultAppData(), UsedDefaults: usedDefaults}
}

type normalizer struct {
	discarded Counts
	recovered Counts
}

// Normalize validates and repairs raw, the generic value produced by
// decoding stored JSON (maps, slices, strings, float64s). It performs no I/O
// and returns the same result for the same input.
func Normalize(raw any) LoadResult {
	root, ok := raw.(map[string]any)
	if !ok {
		return Defaults(true)
	}
	version, ok := asNumber(root["version"])
	if !ok {
		return Defaults(true)
	}
	rawBoards, ok := root["boards"].([]any)
	if !ok {
		return Defaults(true)
	}

	n := &normalizer{}
	data := models.AppData{Version: int(version), Boards: make([]models.Board, 0, len(rawBoards))}
	seen := make(map[string]bool, len(rawBoards))
	for _, rb := range rawBoards {
		m, id, ok := entity(rb)
		if !ok || seen[id] {
			n.discarded.Boards++
			continue
		}
		seen[id] = true
		data.Boards = append(data.Boards, n.board(m, id))
	}

	if len(data.Boards) == 0 {
		res := Defaults(true)
		res.Discarded = n.discarded
		res.Recovered = n.recovered
		return res
	}

	return LoadResult{Data: data, Discarded: n.discarded, Recovered: n.recovered}
}

func (n *normalizer) board(m map[string]any, id string) models.Board {
	b := models.Board{ID: id}
	repaired := normalizeFields(m, boardFields, &b)
	b.Tags = tags(m["tags"])

	rawCols, ok := m["columns"].([]any)
	if !ok {
		b.Columns = []models.Column{}
		repaired = true
	} else {
		b.Columns = n.columns(rawCols)
	}

	if repaired {
		n.recovered.Boards++
	}
	return b
}

func (n *normalizer) columns(rawCols []any) []models.Column {
	cols := make([]models.Column, 0, len(rawCols))
	seenCols := make(map[string]bool, len(rawCols))
	// card ids are unique per board, not per column
	seenCards := make(map[string]bool)

	for _, rc := range rawCols {
		m, id, ok := entity(rc)
		if !ok || seenCols[id] {
			n.discarded.Columns++
			continue
		}
		seenCols[id] = true

		col := models.Column{ID: id}
		repaired := normalizeFields(m, columnFields, &col)

		rawCards, ok := m["cards"].([]any)
		if !ok {
			col.Cards = []models.Card{}
			repaired = true
		} else {
			col.Cards = n.cards(rawCards, seenCards)
		}

		if repaired {
			n.recovered.Columns++
		}
		cols = append(cols, col)
	}
	return cols
}

func (n *normalizer) cards(rawCards []any, seen map[string]bool) []models.Card {
	cards := make([]models.Card, 0, len(rawCards))
	for _, rc := range rawCards {
		m, id, ok := entity(rc)
		if !ok || seen[id] {
			n.discarded.Cards++
			continue
		}
		seen[id] = true

		card := models.Card{ID: id}
		if normalizeFields(m, cardFields, &card) {
			n.recovered.Cards++
		}
		cards = append(cards, card)
	}
	return cards
}

// tags keeps only complete tag entries. Invalid entries are dropped without
// being counted.
func tags(raw any) []models.Tag {
	rawTags, ok := raw.([]any)
	if !ok {
		return []models.Tag{}
	}
	out := make([]models.Tag, 0, len(rawTags))
	seen := make(map[string]bool, len(rawTags))
	for _, rt := range rawTags {
		m, id, ok := entity(rt)
		if !ok || seen[id] {
			continue
		}
		tag := models.Tag{ID: id}
		if normalizeFields(m, tagFields, &tag) {
			continue
		}
		seen[id] = true
		out = append(out, tag)
	}
	return out
}

// entity checks the one non-recoverable requirement: an object with a
// non-empty string id
func entity(raw any) (map[string]any, string, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, "", false
	}
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return nil, "", false
	}
	return m, id, true
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
