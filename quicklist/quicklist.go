package quicklist

import "github.com/katalvlaran/wbvh/pool"

// QuickList is a growable sequence over pool-backed storage. Grow
// takes a new array from the pool at the next exponent, copies the
// live elements, and returns the old array.
type QuickList[T any] struct {
	p    *pool.Pool[T]
	data []T
	exp  int
	n    int
}

// New returns an empty QuickList backed by p, with initial capacity
// for at least initialCap elements.
func New[T any](p *pool.Pool[T], initialCap int) *QuickList[T] {
	exp := pool.PoolIndex(initialCap)
	return &QuickList[T]{
		p:    p,
		data: p.Take(exp),
		exp:  exp,
	}
}

// Count returns the number of elements added.
func (q *QuickList[T]) Count() int {
	return q.n
}

// At returns the element at index i.
func (q *QuickList[T]) At(i int) T {
	return q.data[i]
}

// Set overwrites the element at index i.
func (q *QuickList[T]) Set(i int, v T) {
	q.data[i] = v
}

// Add appends v, growing the backing array if necessary.
func (q *QuickList[T]) Add(v T) {
	if q.n == len(q.data) {
		q.grow()
	}
	q.data[q.n] = v
	q.n++
}

// Reset empties the list without releasing its backing array.
func (q *QuickList[T]) Reset() {
	var zero T
	for i := 0; i < q.n; i++ {
		q.data[i] = zero
	}
	q.n = 0
}

func (q *QuickList[T]) grow() {
	newExp := q.exp + 1
	fresh := q.p.Take(newExp)
	copy(fresh, q.data)
	old := q.data
	oldExp := q.exp
	q.data = fresh
	q.exp = newExp

	var zero T
	for i := range old {
		old[i] = zero
	}
	q.p.Return(old, oldExp)
}
