package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// FindBoard resolves ref as a board id first, then as a case-insensitive
// board name
func FindBoard(data models.AppData, ref string) (*models.Board, error) {
	if b := data.Board(ref); b != nil {
		return b, nil
	}
	ref = strings.TrimSpace(ref)
	for i := range data.Boards {
		if strings.EqualFold(data.Boards[i].Name, ref) {
			return &data.Boards[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrBoardNotFound, ref)
}

// FindColumn resolves ref as a column id, then a case-insensitive name
func FindColumn(b *models.Board, ref string) (*models.Column, error) {
	if col := b.Column(ref); col != nil {
		return col, nil
	}
	ref = strings.TrimSpace(ref)
	for i := range b.Columns {
		if strings.EqualFold(b.Columns[i].Name, ref) {
			return &b.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, ref)
}

// FindTag resolves ref as a tag id, then a case-insensitive name
func FindTag(b *models.Board, ref string) (*models.Tag, error) {
	if tag := b.Tag(ref); tag != nil {
		return tag, nil
	}
	if tag := b.TagByName(ref); tag != nil {
		return tag, nil
	}
	return nil, fmt.Errorf("%w: %s", models.ErrTagNotFound, ref)
}

// FindCard resolves ref as a card id, then a case-insensitive title. A
// title shared by several cards is not resolved.
func FindCard(b *models.Board, ref string) (*models.Card, error) {
	if card := b.Card(ref); card != nil {
		return card, nil
	}
	ref = strings.TrimSpace(ref)
	var found *models.Card
	for ci := range b.Columns {
		for i := range b.Columns[ci].Cards {
			card := &b.Columns[ci].Cards[i]
			if !strings.EqualFold(card.Title, ref) {
				continue
			}
			if found != nil {
				return nil, fmt.Errorf("%w: %q matches several cards, use the id", models.ErrCardNotFound, ref)
			}
			found = card
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, ref)
	}
	return found, nil
}
