package common

// Chain identifies the node chain a linked container currently holds. Every
// live node points at a Chain; a container accepts a position only when the
// node's Chain resolves to its own. Handing a whole chain to another container
// forwards one Chain to the other, so no node has to be retagged.
//
// A container's own Chain is always a root. Chains left behind by Forward
// never become roots again.
type Chain struct {
	parent *Chain
}

// NewChain returns a fresh root Chain.
func NewChain() *Chain {
	return &Chain{}
}

// Root resolves forwarding. Paths are compressed as they are walked.
func (c *Chain) Root() *Chain {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	for c != root {
		next := c.parent
		c.parent = root
		c = next
	}
	return root
}

// Forward makes every node tagged with c resolve to dst from now on.
func (c *Chain) Forward(dst *Chain) {
	from, to := c.Root(), dst.Root()
	if from != to {
		from.parent = to
	}
}

// Same reports whether a and b resolve to the same chain. A nil Chain, as
// held by an erased node, matches nothing.
func Same(a, b *Chain) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Root() == b.Root()
}
