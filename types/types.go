package types

// NilAddress is the address used to mark the empty list and the end of the list.
const NilAddress = 0

// Address is the type constraint for node addresses.
type Address interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type (
	// NodeAddress is the default address type.
	NodeAddress uint64

	// ShortAddress is the compact address type for pools of up to 65535 nodes.
	ShortAddress uint16
)
