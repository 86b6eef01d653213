package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/listpool/types"
)

type nodeOwner uint8

const (
	ownerNone nodeOwner = iota
	ownerList
	ownerFree
)

// Verify checks that lists starting at heads and the free list are well-formed and disjoint,
// and that every node of the pool belongs to one of them.
// Passing heads of all the live lists proves that live and free nodes partition the pool.
func (p *Pool[T, A]) Verify(heads ...A) error {
	owners := make([]nodeOwner, len(p.nodes))

	if err := p.mark(owners, p.freeHead, ownerFree); err != nil {
		return errors.Wrap(err, "free list is corrupted")
	}
	for i, head := range heads {
		if err := p.mark(owners, head, ownerList); err != nil {
			return errors.Wrapf(err, "list %d starting at %d is corrupted", i, head)
		}
	}

	for i, owner := range owners {
		if owner == ownerNone {
			return errors.Errorf("node %d is neither in a list nor free", i+1)
		}
	}
	return nil
}

func (p *Pool[T, A]) mark(owners []nodeOwner, head A, owner nodeOwner) error {
	for address := head; address != types.NilAddress; address = p.nodes[address-1].Next {
		if uint64(address) > uint64(len(p.nodes)) {
			return errors.Errorf("address %d is out of range, pool stores %d nodes", address, len(p.nodes))
		}

		switch owners[address-1] {
		case ownerNone:
			owners[address-1] = owner
		case ownerFree:
			if owner == ownerList {
				return errors.Errorf("node %d is on the free list", address)
			}
			return errors.Errorf("node %d is reachable more than once", address)
		default:
			// Cycle in the same list or node shared with another list.
			return errors.Errorf("node %d is reachable more than once", address)
		}
	}
	return nil
}
