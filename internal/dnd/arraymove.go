package dnd

// ArrayMove returns a copy of items with the element at from moved to
// to. Elements in between shift by one. Out-of-range indexes return an
// unchanged copy.
func ArrayMove[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out
}

// Insert returns a copy of items with item placed at index. Indexes past
// the end, or negative, append.
func Insert[T any](items []T, index int, item T) []T {
	out := make([]T, 0, len(items)+1)
	if index < 0 || index > len(items) {
		index = len(items)
	}
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}
