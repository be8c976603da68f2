package common

// BoundedFIFO keeps at most Cap items; pushing onto a full queue evicts the oldest.
type BoundedFIFO[T any] struct {
	items []T
	cap   int
}

func NewBoundedFIFO[T any](capacity int) *BoundedFIFO[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedFIFO[T]{cap: capacity, items: make([]T, 0, capacity)}
}

func (q *BoundedFIFO[T]) Push(v T) {
	if len(q.items) == q.cap {
		copy(q.items, q.items[1:])
		q.items = q.items[:q.cap-1]
	}
	q.items = append(q.items, v)
}

func (q *BoundedFIFO[T]) Len() int { return len(q.items) }

func (q *BoundedFIFO[T]) Cap() int { return q.cap }

// Items returns a copy, oldest first.
func (q *BoundedFIFO[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Reset replaces the contents with items, keeping only the newest Cap entries.
func (q *BoundedFIFO[T]) Reset(items []T) {
	q.items = q.items[:0]
	for _, v := range items {
		q.Push(v)
	}
}
