package pool

import "math/bits"

// maxExponent is the largest size exponent a Pool tracks (spec: p in [0,30]).
const maxExponent = 30

// PoolIndex returns the smallest p with 2^p >= max(1, n), using a
// single branchless bit-scan on (max(n,1)<<1)-1.
func PoolIndex(n int) int {
	if n < 1 {
		n = 1
	}
	v := uint32(n)<<1 - 1
	return bits.Len32(v) - 1
}

// Pool is a power-of-two-sized array cache keyed by exponent, holding
// elements of one type T. Returned arrays are pushed onto a LIFO stack
// per exponent and reused by later Take calls.
//
// Not safe for concurrent use.
type Pool[T any] struct {
	stacks      [maxExponent + 1][][]T
	debug       bool
	outstanding [maxExponent + 1]int
}

// New returns an empty Pool[T].
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// SetDebug enables or disables outstanding-array tracking and the
// default-initialized check in Return.
func (p *Pool[T]) SetDebug(debug bool) {
	p.debug = debug
}

// Outstanding reports the number of arrays taken from exponent p that
// have not yet been returned. Only meaningful in debug mode.
func (p *Pool[T]) Outstanding(pExp int) int {
	if pExp < 0 || pExp > maxExponent {
		panic(ErrInvalidExponent)
	}
	return p.outstanding[pExp]
}

// Take pops an array of length 2^p from the pool, or allocates a fresh
// one if the stack at p is empty.
func (p *Pool[T]) Take(pExp int) []T {
	if pExp < 0 || pExp > maxExponent {
		panic(ErrInvalidExponent)
	}
	stack := p.stacks[pExp]
	n := len(stack)
	var buf []T
	if n == 0 {
		buf = make([]T, 1<<uint(pExp))
	} else {
		buf = stack[n-1]
		p.stacks[pExp] = stack[:n-1]
	}
	if p.debug {
		p.outstanding[pExp]++
	}
	return buf
}

// Return pushes buf back onto the stack for exponent p. In debug mode
// it asserts buf has the zero value in every element, catching callers
// that returned a buffer still referenced elsewhere. Debug mode
// requires T to be comparable; leave it off for element types that
// are not (it panics on the first Return otherwise).
func (p *Pool[T]) Return(buf []T, pExp int) {
	if pExp < 0 || pExp > maxExponent {
		panic(ErrInvalidExponent)
	}
	if p.debug {
		var zero T
		for i := range buf {
			if any(buf[i]) != any(zero) {
				panic("pool: returned buffer is not default-initialized")
			}
		}
		p.outstanding[pExp]--
	}
	p.stacks[pExp] = append(p.stacks[pExp], buf)
}

// EnsureCount pushes fresh 2^p-length arrays until the stack at p has
// at least k entries.
func (p *Pool[T]) EnsureCount(pExp, k int) {
	if pExp < 0 || pExp > maxExponent {
		panic(ErrInvalidExponent)
	}
	for len(p.stacks[pExp]) < k {
		p.stacks[pExp] = append(p.stacks[pExp], make([]T, 1<<uint(pExp)))
	}
}

// Clear drops all cached arrays. Arrays already taken and held by
// callers are unaffected.
func (p *Pool[T]) Clear() {
	for i := range p.stacks {
		p.stacks[i] = nil
	}
}
