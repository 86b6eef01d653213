package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/listpool/types"
)

// Begin returns iterator pointing to the head of the list.
func (p *Pool[T, A]) Begin(head A) Iterator[T, A] {
	return Iterator[T, A]{
		pool:    p,
		address: head,
	}
}

// IteratorEnd returns iterator pointing past the end of the list.
// The result is the same for every list, so head is ignored.
func (p *Pool[T, A]) IteratorEnd(_ A) Iterator[T, A] {
	return Iterator[T, A]{
		pool:    p,
		address: types.NilAddress,
	}
}

// Iterator is a forward cursor over the list stored in the pool.
type Iterator[T any, A types.Address] struct {
	pool    *Pool[T, A]
	address A
}

// Address returns the address of the node iterator points to.
func (i Iterator[T, A]) Address() A {
	return i.address
}

// IsEnd returns true if iterator went past the last node.
func (i Iterator[T, A]) IsEnd() bool {
	return i.address == types.NilAddress
}

// Value returns the value of the current node.
func (i Iterator[T, A]) Value() T {
	return i.pool.node(i.address).Value
}

// Ref returns pointer to the value of the current node.
func (i Iterator[T, A]) Ref() *T {
	return &i.pool.node(i.address).Value
}

// Next returns iterator advanced to the next node.
func (i Iterator[T, A]) Next() Iterator[T, A] {
	if i.address == types.NilAddress {
		panic(errors.New("iterator advanced past the end of the list"))
	}
	return Iterator[T, A]{
		pool:    i.pool,
		address: i.pool.node(i.address).Next,
	}
}

// Equal returns true if both iterators point to the same position in the same pool.
func (i Iterator[T, A]) Equal(other Iterator[T, A]) bool {
	return i.pool == other.pool && i.address == other.address
}
