package schema

import "github.com/thenoetrevino/kanbanned/internal/models"

// field describes how one non-id attribute of an entity is checked and
// repaired. The repair policy for every entity lives in the tables below;
// normalizeFields is the only code that interprets them.
type field[T any] struct {
	name string
	// optional fields may be absent (or null) without that counting as a repair
	optional bool
	// quietFallback fields take their fallback when absent without counting
	// as a repair; a present value of the wrong type still counts
	quietFallback bool
	// assign stores v into dst and reports whether v had the expected type
	assign func(v any, dst *T) bool
	// fallback stores the replacement value used when assign fails
	fallback func(dst *T)
}

// normalizeFields applies every rule to raw and reports whether any field
// had to fall back. Each field is checked independently.
func normalizeFields[T any](raw map[string]any, fields []field[T], dst *T) bool {
	repaired := false
	for _, f := range fields {
		v, present := raw[f.name]
		if f.optional && (!present || v == nil) {
			continue
		}
		if present && f.assign(v, dst) {
			continue
		}
		f.fallback(dst)
		if !present && f.quietFallback {
			continue
		}
		repaired = true
	}
	return repaired
}

func stringField[T any](name string, set func(*T, string), fallback string) field[T] {
	return field[T]{
		name: name,
		assign: func(v any, dst *T) bool {
			s, ok := v.(string)
			if ok {
				set(dst, s)
			}
			return ok
		},
		fallback: func(dst *T) { set(dst, fallback) },
	}
}

func optionalStringField[T any](name string, set func(*T, string)) field[T] {
	f := stringField(name, set, "")
	f.optional = true
	return f
}

func quiet[T any](f field[T]) field[T] {
	f.quietFallback = true
	return f
}

var cardFields = []field[models.Card]{
	stringField("title", func(c *models.Card, s string) { c.Title = s }, models.UntitledCard),
	stringField("description", func(c *models.Card, s string) { c.Description = s }, ""),
	{
		name: "priority",
		assign: func(v any, c *models.Card) bool {
			s, ok := v.(string)
			if !ok || !models.Priority(s).Valid() {
				return false
			}
			c.Priority = models.Priority(s)
			return true
		},
		fallback: func(c *models.Card) { c.Priority = models.PriorityMedium },
	},
	optionalStringField("tagId", func(c *models.Card, s string) { c.TagID = s }),
}

var columnFields = []field[models.Column]{
	stringField("name", func(c *models.Column, s string) { c.Name = s }, models.UntitledColumn),
}

var boardFields = []field[models.Board]{
	quiet(stringField("name", func(b *models.Board, s string) { b.Name = s }, models.UntitledBoard)),
	optionalStringField("emoji", func(b *models.Board, s string) { b.Emoji = s }),
}

var tagFields = []field[models.Tag]{
	stringField("name", func(t *models.Tag, s string) { t.Name = s }, ""),
	stringField("color", func(t *models.Tag, s string) { t.Color = s }, ""),
}
