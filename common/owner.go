package common

import "sync/atomic"

// Owner identifies a single container instance. Iterators record the Owner of
// the container that produced them, and containers compare it against their
// own before accepting a position. The zero Owner is never issued.
type Owner uint64

var lastOwner atomic.Uint64

// NewOwner issues a fresh identity. It is safe to call from multiple
// goroutines.
func NewOwner() Owner {
	return Owner(lastOwner.Add(1))
}

// Valid reports whether o was issued by NewOwner.
func (o Owner) Valid() bool { return o != 0 }
