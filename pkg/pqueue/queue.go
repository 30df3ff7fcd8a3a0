// Package pqueue is a priority list ordered by a float priority. Items with
// equal priority keep their insertion order.
package pqueue

import (
	"sort"
)

func WithOrderAsc[T any]() Option[T] {
	return func(q *Queue[T]) {
		q.order = orderAsc
	}
}

func WithOrderDesc[T any]() Option[T] {
	return func(q *Queue[T]) {
		q.order = orderDesc
	}
}

// WithCap bounds the number of items kept once the queue is ordered.
func WithCap[T any](size uint) Option[T] {
	return func(q *Queue[T]) {
		q.cap = int(size)
	}
}

type Option[T any] func(*Queue[T])

type order uint8

const (
	orderAsc order = iota
	orderDesc
)

type Item[T any] struct {
	Value    T
	Priority float64
}

func New[T any](opts ...Option[T]) *Queue[T] {
	p := &Queue[T]{order: orderAsc, cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Queue orders lazily: pushes append, reads sort once.
type Queue[T any] struct {
	order  order
	cap    int
	items  []Item[T]
	sorted bool
}

func (q *Queue[T]) Push(val T, priority float64) {
	q.items = append(q.items, Item[T]{Value: val, Priority: priority})
	q.sorted = false
}

// Items returns the ordered items. The queue keeps ownership of the slice.
func (q *Queue[T]) Items() []Item[T] {
	q.arrange()
	return q.items
}

// PopAll returns every item in order and empties the queue.
func (q *Queue[T]) PopAll() []Item[T] {
	q.arrange()
	pulled := q.items
	q.items = nil
	return pulled
}

func (q *Queue[T]) Head() (Item[T], bool) {
	q.arrange()
	if len(q.items) == 0 {
		return Item[T]{}, false
	}
	x := q.items[0]
	q.items = q.items[1:]
	return x, true
}

func (q *Queue[T]) Cap() int { return q.cap }

func (q *Queue[T]) Len() int {
	q.arrange()
	return len(q.items)
}

func (q *Queue[T]) arrange() {
	if q.sorted {
		return
	}
	sort.SliceStable(q.items, func(i, j int) bool {
		if q.order == orderAsc {
			return q.items[i].Priority < q.items[j].Priority
		}
		return q.items[i].Priority > q.items[j].Priority
	})
	if q.cap >= 0 && q.cap < len(q.items) {
		q.items = q.items[:q.cap]
	}
	q.sorted = true
}
