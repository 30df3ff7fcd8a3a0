package pqueue

import "testing"

func TestQueue_Order(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		opts     []Option[string]
		push     []Item[string]
		expected []string
	}{
		{
			name:     "asc",
			push:     []Item[string]{{"c", 3}, {"a", 1}, {"b", 2}},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "desc",
			opts:     []Option[string]{WithOrderDesc[string]()},
			push:     []Item[string]{{"c", 3}, {"a", 1}, {"b", 2}},
			expected: []string{"c", "b", "a"},
		},
		{
			name:     "stable_ties",
			push:     []Item[string]{{"first", 1}, {"zero", 0}, {"second", 1}, {"third", 1}},
			expected: []string{"zero", "first", "second", "third"},
		},
		{
			name:     "cap",
			opts:     []Option[string]{WithCap[string](2)},
			push:     []Item[string]{{"c", 3}, {"a", 1}, {"b", 2}},
			expected: []string{"a", "b"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			q := New(test.opts...)
			for _, it := range test.push {
				q.Push(it.Value, it.Priority)
			}
			got := q.PopAll()
			if len(got) != len(test.expected) {
				t.Fatalf("len, got: %d, expected: %d", len(got), len(test.expected))
			}
			for i := range got {
				if got[i].Value != test.expected[i] {
					t.Errorf("item %d, got: %s, expected: %s", i, got[i].Value, test.expected[i])
				}
			}
			if q.Len() != 0 {
				t.Errorf("queue must be empty after PopAll, got: %d", q.Len())
			}
		})
	}
}

func TestQueue_Head(t *testing.T) {
	t.Parallel()
	q := New[int]()
	if _, ok := q.Head(); ok {
		t.Errorf("head of an empty queue must report false")
	}
	q.Push(2, 2)
	q.Push(1, 1)
	if it, ok := q.Head(); !ok || it.Value != 1 {
		t.Errorf("head, got: %v %v, expected: 1 true", it.Value, ok)
	}
	q.Push(0, 0)
	if it, _ := q.Head(); it.Value != 0 {
		t.Errorf("head after push, got: %v, expected: 0", it.Value)
	}
	if q.Len() != 1 {
		t.Errorf("len, got: %d, expected: 1", q.Len())
	}
}
