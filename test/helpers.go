package test

import (
	"github.com/samber/lo"

	"github.com/outofforest/listpool/alloc"
	"github.com/outofforest/listpool/types"
)

// CollectValues collects values stored in the list, in list order.
func CollectValues[T any, A types.Address](p *alloc.Pool[T, A], head A) []T {
	values := []T{}
	for v := range p.Values(head) {
		values = append(values, v)
	}
	return values
}

// CollectAddresses collects addresses of nodes forming the list, in list order.
func CollectAddresses[T any, A types.Address](p *alloc.Pool[T, A], head A) []A {
	addresses := []A{}
	for address := range p.All(head) {
		addresses = append(addresses, address)
	}
	return addresses
}

// PushFront builds list by inserting values at the front, one by one.
func PushFront[T any, A types.Address](p *alloc.Pool[T, A], head A, values ...T) A {
	for _, v := range values {
		head = p.PushFront(v, head)
	}
	return head
}

// PushBack builds list by appending values, one by one.
func PushBack[T any, A types.Address](p *alloc.Pool[T, A], head A, values ...T) A {
	for _, v := range values {
		head = p.PushBack(v, head)
	}
	return head
}

// Reversed returns copy of values in reverse order.
func Reversed[T any](values []T) []T {
	return lo.Reverse(append([]T{}, values...))
}
