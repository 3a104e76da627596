// Package searchtree implements the derivation tree the search engine grows
// over a grammar: tree nodes, child selection, one MCTS iteration (in both
// its growing and memory-scarce modes), pure rollouts, and pruning.
package searchtree

// kind tags which variant a Tree node is in.
type kind uint8

const (
	// kindDeleted marks a tombstoned child: pruned away, but still
	// occupying its rule-indexed slot so sibling indices stay aligned
	// with the grammar's rule list.
	kindDeleted kind = iota
	// kindLeaf is an unexplored branch: neither a distribution nor
	// children have been allocated for it yet.
	kindLeaf
	// kindKnownLeaf is a leaf that has already been scored once (e.g. a
	// terminal state reached at the end of a derivation) and carries a
	// distribution but no children.
	kindKnownLeaf
	// kindNode is an internal node: it has a distribution, one child per
	// applicable grammar rule, and the state those rules were derived
	// from (exposed through State; Expand and NoExpand take the rule
	// list from the work stack, not from it).
	kindNode
)

// Tree is a node of the search tree, realized as a tagged variant rather
// than an interface hierarchy: Leaf, KnownLeaf(distribution), Node (state +
// distribution + children) or Deleted (a pruned tombstone). S is the
// grammar's state type, D the concrete Distribution implementation stored
// at scored nodes.
type Tree[S any, D any] struct {
	kind         kind
	state        S
	distribution D
	children     []Tree[S, D]
}

// Leaf returns a fresh, unexplored leaf.
func Leaf[S any, D any]() Tree[S, D] {
	return Tree[S, D]{kind: kindLeaf}
}

// Deleted returns a tombstoned node.
func Deleted[S any, D any]() Tree[S, D] {
	return Tree[S, D]{kind: kindDeleted}
}

// KnownLeaf returns a leaf that already carries a distribution.
func KnownLeaf[S any, D any](d D) Tree[S, D] {
	return Tree[S, D]{kind: kindKnownLeaf, distribution: d}
}

// NewNode returns an internal node expanded from state, with the given
// distribution and one child per grammar rule applicable to state.
func NewNode[S any, D any](state S, d D, children []Tree[S, D]) Tree[S, D] {
	if len(children) == 0 {
		panic("searchtree: NewNode requires at least one child")
	}
	return Tree[S, D]{kind: kindNode, state: state, distribution: d, children: children}
}

// IsDeleted reports whether this node has been pruned away.
func (t *Tree[S, D]) IsDeleted() bool { return t.kind == kindDeleted }

// IsLeaf reports whether this node is an unexplored, undistributed leaf.
func (t *Tree[S, D]) IsLeaf() bool { return t.kind == kindLeaf }

// IsNode reports whether this node has children.
func (t *Tree[S, D]) IsNode() bool { return t.kind == kindNode }

// HasDistribution reports whether this node carries a distribution
// (KnownLeaf or Node).
func (t *Tree[S, D]) HasDistribution() bool {
	return t.kind == kindKnownLeaf || t.kind == kindNode
}

// Distribution returns this node's distribution. It panics on a Leaf or
// Deleted node, which never carry one: callers are expected to check
// HasDistribution (or know the node's provenance) first, mirroring the
// teacher's panic-on-invariant-violation convention for programmer errors.
func (t *Tree[S, D]) Distribution() D {
	if !t.HasDistribution() {
		panic("searchtree: Distribution called on a node with no distribution")
	}
	return t.distribution
}

// State returns the state a Node was expanded from. It panics on any other
// variant.
func (t *Tree[S, D]) State() S {
	if t.kind != kindNode {
		panic("searchtree: State called on a non-Node tree")
	}
	return t.state
}

// Children returns this node's children. It returns nil for any variant
// other than Node.
func (t *Tree[S, D]) Children() []Tree[S, D] {
	if t.kind != kindNode {
		return nil
	}
	return t.children
}

// visitCounter is the NbVisit() uint64 accessor every distribution
// provides. Tree's D parameter is unconstrained, so Tree.NbVisit reaches
// the accessor through a type assertion.
type visitCounter interface {
	NbVisit() uint64
}

// NbVisit returns the visit count recorded by this node's distribution, or 0
// for a Leaf or Deleted node.
func (t *Tree[S, D]) NbVisit() uint64 {
	if !t.HasDistribution() {
		return 0
	}
	v, ok := any(t.distribution).(visitCounter)
	if !ok {
		panic("searchtree: distribution type does not implement NbVisit")
	}
	return v.NbVisit()
}

// Size returns the number of tree elements (deleted, leaf, known-leaf and
// node slots) in this subtree, used by search.Nested to decide when the
// tree has grown past its element limit and must be pruned.
func (t *Tree[S, D]) Size() int {
	total := 1
	for i := range t.children {
		total += t.children[i].Size()
	}
	return total
}
