package quicklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wbvh/pool"
	"github.com/katalvlaran/wbvh/quicklist"
)

func TestAddAndCount(t *testing.T) {
	p := pool.New[int]()
	q := quicklist.New[int](p, 2)
	for i := 0; i < 10; i++ {
		q.Add(i * i)
	}
	require.Equal(t, 10, q.Count())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i*i, q.At(i))
	}
}

func TestSet(t *testing.T) {
	p := pool.New[string]()
	q := quicklist.New[string](p, 1)
	q.Add("a")
	q.Add("b")
	q.Set(1, "c")
	assert.Equal(t, "c", q.At(1))
}

func TestReset(t *testing.T) {
	p := pool.New[int]()
	q := quicklist.New[int](p, 4)
	q.Add(1)
	q.Add(2)
	q.Reset()
	assert.Equal(t, 0, q.Count())
	q.Add(3)
	assert.Equal(t, 3, q.At(0))
}

func TestGrow_PreservesOrder(t *testing.T) {
	p := pool.New[int]()
	q := quicklist.New[int](p, 1)
	const n = 100
	for i := 0; i < n; i++ {
		q.Add(i)
	}
	require.Equal(t, n, q.Count())
	for i := 0; i < n; i++ {
		require.Equal(t, i, q.At(i))
	}
}
