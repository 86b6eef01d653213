// Package alloc stores singly-linked lists in a shared pool of nodes addressed by integers.
//
// Address returned by the pool is valid only until the node it points to is freed. Pool does not detect
// stale addresses: after the node is reused, the old address silently points to the node of another list.
// Always continue with the address returned by the last operation changing the list.
package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/listpool/types"
)

// Config stores configuration of the pool.
type Config struct {
	// Reserve is the number of nodes the pool preallocates space for.
	Reserve uint64
}

type node[T any, A types.Address] struct {
	Value T
	Next  A
}

// New creates new pool.
func New[T any, A types.Address](config Config) *Pool[T, A] {
	return &Pool[T, A]{
		nodes: make([]node[T, A], 0, config.Reserve),
	}
}

// Pool stores nodes of many singly-linked lists in one growable slice.
// List is represented by the address of its head node. Addresses are 1-based, address 0 marks the empty list
// and the end of every list.
//
// Pool is not safe for concurrent use, see Locked.
type Pool[T any, A types.Address] struct {
	nodes []node[T, A]

	// Head of the chain of nodes available for reuse. Never exposed to the caller.
	freeHead A
}

// NewList returns the empty list.
func (p *Pool[T, A]) NewList() A {
	return types.NilAddress
}

// End returns the address terminating every list.
func (p *Pool[T, A]) End() A {
	return types.NilAddress
}

// IsEmpty returns true if address represents the empty list.
func (p *Pool[T, A]) IsEmpty(address A) bool {
	return address == types.NilAddress
}

// Value returns pointer to the value stored in the node.
// Pointer is valid until the next allocation, because growing the pool moves the nodes.
func (p *Pool[T, A]) Value(address A) *T {
	return &p.node(address).Value
}

// Next returns pointer to the address of the node following the one at address.
// Pointer is valid until the next allocation, because growing the pool moves the nodes.
func (p *Pool[T, A]) Next(address A) *A {
	return &p.node(address).Next
}

// PushFront inserts value at the beginning of the list and returns the new head.
func (p *Pool[T, A]) PushFront(value T, head A) A {
	return p.allocate(value, head)
}

// PushBack appends value to the end of the list and returns the head.
// Head changes only if the list was empty. Tail is found by walking the list.
func (p *Pool[T, A]) PushBack(value T, head A) A {
	if head == types.NilAddress {
		return p.allocate(value, types.NilAddress)
	}

	p.node(head)
	address := p.allocate(value, types.NilAddress)

	tail := head
	for {
		n := p.node(tail)
		if n.Next == types.NilAddress {
			n.Next = address
			return head
		}
		tail = n.Next
	}
}

// PushAfter inserts value right after the node at address and returns address of the new node.
// Callers keeping their own tail handle use it to append in constant time.
func (p *Pool[T, A]) PushAfter(value T, address A) A {
	// Validate before allocating so a bad address does not leak a node.
	p.node(address)

	newAddress := p.allocate(value, types.NilAddress)
	n := p.node(address)
	p.nodes[newAddress-1].Next = n.Next
	n.Next = newAddress
	return newAddress
}

// Free removes the head node of the list and returns the new head.
func (p *Pool[T, A]) Free(head A) A {
	if head == types.NilAddress {
		return types.NilAddress
	}

	n := p.node(head)
	next := n.Next

	var zero T
	n.Value = zero
	n.Next = p.freeHead
	p.freeHead = head

	return next
}

// FreeList frees all the nodes of the list and returns the empty list.
func (p *Pool[T, A]) FreeList(head A) A {
	for head != types.NilAddress {
		head = p.Free(head)
	}
	return head
}

// Reverse reverses the list in place and returns the new head.
func (p *Pool[T, A]) Reverse(head A) A {
	var reversed A
	for head != types.NilAddress {
		n := p.node(head)
		next := n.Next
		n.Next = reversed
		reversed = head
		head = next
	}
	return reversed
}

// Len returns the number of nodes in the list.
func (p *Pool[T, A]) Len(head A) uint64 {
	var length uint64
	for ; head != types.NilAddress; head = p.node(head).Next {
		length++
	}
	return length
}

// Size returns the number of node slots ever allocated.
func (p *Pool[T, A]) Size() uint64 {
	return uint64(len(p.nodes))
}

// NumOfFree returns the number of nodes waiting for reuse.
func (p *Pool[T, A]) NumOfFree() uint64 {
	return p.Len(p.freeHead)
}

// Reserve makes sure pool has space for at least n nodes without reallocation.
func (p *Pool[T, A]) Reserve(n uint64) {
	if n <= uint64(cap(p.nodes)) {
		return
	}

	nodes := make([]node[T, A], len(p.nodes), n)
	copy(nodes, p.nodes)
	p.nodes = nodes
}

// Capacity returns the number of nodes pool may store without reallocation.
func (p *Pool[T, A]) Capacity() uint64 {
	return uint64(cap(p.nodes))
}

// Values iterates over values stored in the list.
func (p *Pool[T, A]) Values(head A) func(func(T) bool) {
	return func(yield func(T) bool) {
		for head != types.NilAddress {
			n := p.node(head)
			if !yield(n.Value) {
				return
			}
			head = n.Next
		}
	}
}

// All iterates over addresses and values of the nodes in the list.
// Value may be modified by the caller but the list must not be changed during iteration.
func (p *Pool[T, A]) All(head A) func(func(A, *T) bool) {
	return func(yield func(A, *T) bool) {
		for head != types.NilAddress {
			n := p.node(head)
			if !yield(head, &n.Value) {
				return
			}
			head = n.Next
		}
	}
}

func (p *Pool[T, A]) allocate(value T, next A) A {
	if p.freeHead != types.NilAddress {
		address := p.freeHead
		n := &p.nodes[address-1]
		p.freeHead = n.Next
		n.Value = value
		n.Next = next
		return address
	}

	if uint64(len(p.nodes)) >= uint64(^A(0)) {
		panic(errors.Errorf("address space exhausted, pool already stores %d nodes", len(p.nodes)))
	}

	p.nodes = append(p.nodes, node[T, A]{
		Value: value,
		Next:  next,
	})
	return A(len(p.nodes))
}

func (p *Pool[T, A]) node(address A) *node[T, A] {
	if address == types.NilAddress {
		panic(errors.New("nil address dereferenced"))
	}
	if uint64(address) > uint64(len(p.nodes)) {
		panic(errors.Errorf("address %d is out of range, pool stores %d nodes", address, len(p.nodes)))
	}
	return &p.nodes[address-1]
}
