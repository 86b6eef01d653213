package alloc_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/listpool/alloc"
	"github.com/outofforest/listpool/test"
	"github.com/outofforest/listpool/types"
)

func TestDigest(t *testing.T) {
	requireT := require.New(t)

	pool := alloc.New[uint64, types.NodeAddress](alloc.Config{})
	values := lo.RangeFrom[uint64](1, 20)

	l1 := test.PushBack(pool, pool.NewList(), values...)
	l2 := test.PushFront(pool, pool.NewList(), test.Reversed(values)...)
	l3 := test.PushBack(pool, pool.NewList(), test.Reversed(values)...)

	// Same values at different addresses.
	requireT.NotEqual(test.CollectAddresses(pool, l1), test.CollectAddresses(pool, l2))
	requireT.Equal(alloc.Digest(pool, l1), alloc.Digest(pool, l2))

	// Same values in different order.
	requireT.NotEqual(alloc.Digest(pool, l1), alloc.Digest(pool, l3))

	// Digest follows modifications.
	digest := alloc.Digest(pool, l1)
	*pool.Value(l1) = 100
	requireT.NotEqual(digest, alloc.Digest(pool, l1))
}

func TestDigestOfEmptyList(t *testing.T) {
	requireT := require.New(t)

	pool1 := alloc.New[uint64, types.NodeAddress](alloc.Config{})
	pool2 := alloc.New[uint64, types.NodeAddress](alloc.Config{})
	l := test.PushBack(pool2, pool2.NewList(), 1)

	requireT.Equal(alloc.Digest(pool1, pool1.NewList()), alloc.Digest(pool2, pool2.NewList()))
	requireT.NotEqual(alloc.Digest(pool1, pool1.NewList()), alloc.Digest(pool2, l))
}
