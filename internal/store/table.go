package store

// Table is an in-memory keyed collection for one entity kind.
// Values are returned in insertion order. Table does no locking of its own;
// callers serialize access (see the repository package).
type Table[T any] struct {
	rows   map[int]T
	order  []int
	nextID int
}

// NewTable creates an empty Table whose first assigned id is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int]T), nextID: 1}
}

// NextID reserves and returns the next identifier for this kind.
// Identifiers are never handed out twice, even after Delete.
func (t *Table[T]) NextID() int {
	id := t.nextID
	t.nextID++
	return id
}

// Set stores row under id, replacing any previous value in place.
func (t *Table[T]) Set(id int, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

// Get returns the row stored under id.
func (t *Table[T]) Get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Values returns a snapshot of every row in insertion order.
func (t *Table[T]) Values() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// Delete removes id and reports whether it was present.
func (t *Table[T]) Delete(id int) bool {
	if _, exists := t.rows[id]; !exists {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}
