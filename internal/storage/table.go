package storage

import "slices"

// table is an arena-style collection: a growable id-indexed map paired with
// a free-standing id counter. Identifiers start at 1, increase strictly and
// are never reused, even after a row is removed.
type table[T any] struct {
	nextID uint
	rows   map[uint]T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[uint]T)}
}

// insert assigns the next identifier, stores the row built by mk and
// returns it.
func (t *table[T]) insert(mk func(id uint) T) T {
	id := t.nextID
	t.nextID++
	row := mk(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) get(id uint) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id uint, row T) {
	t.rows[id] = row
}

// remove deletes the row and reports whether it existed.
func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// all returns every row ordered by ascending id.
func (t *table[T]) all() []T {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// where returns the rows matching pred, ordered by ascending id.
func (t *table[T]) where(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, row := range t.all() {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// find returns the lowest-id row matching pred.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	for _, row := range t.all() {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) size() int {
	return len(t.rows)
}
