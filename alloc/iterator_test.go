package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/listpool/algo"
	"github.com/outofforest/listpool/alloc"
	"github.com/outofforest/listpool/test"
)

func newPiLists() (*alloc.Pool[int, uint16], uint16, uint16) {
	pool := alloc.New[int, uint16](alloc.Config{})
	l1 := test.PushFront(pool, pool.NewList(), 3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5)
	l2 := test.PushFront(pool, pool.NewList(), 8, 9, 7, 9, 3, 1, 1, 5, 9, 9, 7)
	return pool, l1, l2
}

func TestIteratorTraversal(t *testing.T) {
	requireT := require.New(t)
	pool, l1, _ := newPiLists()

	values := []int{}
	for it := pool.Begin(l1); !it.Equal(pool.IteratorEnd(l1)); it = it.Next() {
		values = append(values, it.Value())
	}
	requireT.Equal([]int{5, 3, 5, 6, 2, 9, 5, 1, 4, 1, 3}, values)
}

func TestIteratorMaxElement(t *testing.T) {
	requireT := require.New(t)
	pool, l1, _ := newPiLists()

	m := algo.MaxElement[int](pool.Begin(l1), pool.IteratorEnd(l1))
	requireT.False(m.IsEnd())
	requireT.Equal(9, m.Value())
}

func TestIteratorMinElement(t *testing.T) {
	requireT := require.New(t)
	pool, _, l2 := newPiLists()

	m := algo.MinElement[int](pool.Begin(l2), pool.IteratorEnd(l2))
	requireT.False(m.IsEnd())
	requireT.Equal(1, m.Value())
}

func TestIteratorEndIsSharedByAllLists(t *testing.T) {
	requireT := require.New(t)
	pool, l1, l2 := newPiLists()

	requireT.True(pool.IteratorEnd(l1).Equal(pool.IteratorEnd(l2)))
	requireT.True(pool.IteratorEnd(l1).IsEnd())
	requireT.True(pool.Begin(pool.NewList()).Equal(pool.IteratorEnd(l1)))
	requireT.Equal(pool.End(), pool.IteratorEnd(l1).Address())
}

func TestIteratorEquality(t *testing.T) {
	requireT := require.New(t)
	pool, l1, l2 := newPiLists()
	pool2, l3, _ := newPiLists()

	requireT.True(pool.Begin(l1).Equal(pool.Begin(l1)))
	requireT.False(pool.Begin(l1).Equal(pool.Begin(l1).Next()))

	// Different lists.
	requireT.False(pool.Begin(l1).Equal(pool.Begin(l2)))

	// Same address and same values, different pools.
	requireT.Equal(l1, l3)
	requireT.False(pool.Begin(l1).Equal(pool2.Begin(l3)))
	requireT.False(pool.IteratorEnd(l1).Equal(pool2.IteratorEnd(l3)))
}

func TestIteratorRefModifiesValue(t *testing.T) {
	requireT := require.New(t)
	pool, l1, _ := newPiLists()

	for it := pool.Begin(l1); !it.IsEnd(); it = it.Next() {
		*it.Ref() *= 2
	}
	requireT.Equal([]int{10, 6, 10, 12, 4, 18, 10, 2, 8, 2, 6}, test.CollectValues(pool, l1))
}

func TestIteratorAddress(t *testing.T) {
	requireT := require.New(t)
	pool, l1, _ := newPiLists()

	it := pool.Begin(l1)
	requireT.Equal(l1, it.Address())
	requireT.Equal(*pool.Next(l1), it.Next().Address())
}

func TestIteratorPastEndPanics(t *testing.T) {
	requireT := require.New(t)
	pool, l1, _ := newPiLists()

	end := pool.IteratorEnd(l1)
	requireT.Panics(func() { end.Next() })
	requireT.Panics(func() { end.Value() })
	requireT.Panics(func() { end.Ref() })
}
