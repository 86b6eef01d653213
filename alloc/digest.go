package alloc

import (
	"github.com/cespare/xxhash"

	"github.com/outofforest/listpool/types"
	"github.com/outofforest/photon"
)

// Digest computes the hash of the values stored in the list, in list order.
// Lists holding equal sequences of values have equal digests, no matter where their nodes are.
// Value bytes are hashed as they are laid out in memory, so T should not contain pointers.
func Digest[T comparable, A types.Address](p *Pool[T, A], head A) uint64 {
	d := xxhash.New()
	for v := range p.Values(head) {
		_, _ = d.Write(photon.NewFromValue(&v).B)
	}
	return d.Sum64()
}
