// Package arcgraph — central types, sentinels, and the Graph arena.
//
// This file declares TermState, GraphKind, the cost and index sentinels, the
// Graph struct itself, and the New constructor. Mutating operations live in
// knots.go / edges.go / contract.go.
package arcgraph

import "errors"

// Sentinel errors for arcgraph operations.
var (
	// ErrKnotRange indicates a node index outside [0, NumNodes).
	ErrKnotRange = errors.New("arcgraph: node index out of range")

	// ErrArcRange indicates an arc index outside [0, NumArcs) or a dead arc slot.
	ErrArcRange = errors.New("arcgraph: arc index out of range or deleted")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("arcgraph: negative capacity hint")
)

// Faraway is the "infinite" cost/prize sentinel. Arcs with cost ≥ Faraway are
// impassable; prizes equal to Faraway mark mandatory (fixed) terminals.
// It is deliberately far below math.MaxFloat64 so that sums of a few Faraway
// values never overflow.
const Faraway = 1e15

// Blocked is the "structurally forced" cost sentinel: an arc with
// cost ≥ Blocked must not take part in cost shifting, but is still strictly
// below Faraway so blocked arcs remain distinguishable from impassable ones.
const Blocked = 1e9

// PrizeUnset marks a prize slot that has not been initialized yet.
// It never takes part in arithmetic; use PrizeIsSet before reading.
const PrizeUnset = -Faraway

// Intrusive-list terminators for the per-node arc lists.
const (
	eatLast = -1 // end of list
	eatFree = -2 // arc slot has been deleted
)

// Term2Edge regimes for nodes that are not proper potential terminals.
// Non-negative Term2Edge values are arc ids pointing at the arc that connects
// a terminal to its synthetic twin.
const (
	// NoTerm marks a node that is not any kind of terminal.
	NoTerm = -1

	// FixedTerm marks a terminal mandatorily included in every solution.
	FixedTerm = -2

	// NonLeafTerm marks a terminal handled by cost shifting instead of a twin.
	NonLeafTerm = -3
)

// TermState is the terminal-class tag of a node.
type TermState int8

const (
	// TermNone tags a plain, non-terminal node.
	TermNone TermState = iota

	// TermProper tags a terminal of the current view.
	TermProper

	// TermPseudo tags the synthetic counterpart of a terminal in the
	// view where that counterpart is not the "real" terminal position.
	TermPseudo

	// TermNonLeaf tags, in the extended view, a terminal that is never
	// required as a tree leaf.
	TermNonLeaf
)

// IsAnyTerm reports whether the tag denotes a terminal of any kind.
func (t TermState) IsAnyTerm() bool { return t != TermNone }

// GraphKind identifies the problem class the graph encodes.
type GraphKind int8

const (
	// KindSPG is a plain Steiner tree / arborescence graph (no prizes).
	KindSPG GraphKind = iota

	// KindPC is an unrooted prize-collecting graph.
	KindPC

	// KindRPC is a rooted prize-collecting graph.
	KindRPC

	// KindMW is an unrooted maximum-weight connected subgraph graph.
	KindMW

	// KindRMW is a rooted maximum-weight connected subgraph graph.
	KindRMW
)

// IsPcMw reports whether the kind carries prize-collecting machinery
// (prizes, term2edge, synthetic twins).
func (k GraphKind) IsPcMw() bool { return k != KindSPG }

// IsPc reports whether the kind is prize-collecting proper (cost-shifted).
func (k GraphKind) IsPc() bool { return k == KindPC || k == KindRPC }

// IsMw reports whether the kind is a maximum-weight variant.
func (k GraphKind) IsMw() bool { return k == KindMW || k == KindRMW }

// IsRooted reports whether the kind has a mandatory (non-artificial) root.
func (k GraphKind) IsRooted() bool { return k == KindRPC || k == KindRMW }

// Graph is the mutable arc-list store.
//
// Node attributes are indexed by node id in [0, NumNodes()); arc attributes
// by arc id in [0, NumArcs()). Arc slots are never reused: EdgeDel marks both
// twins dead and ArcIsDeleted reports such slots. Node slots likewise persist;
// KnotDel only severs incidence.
type Graph struct {
	// Kind is the problem class; see GraphKind.
	Kind GraphKind

	// Source is the designated root node (artificial for unrooted kinds).
	Source int

	// Extended reports whether the graph currently presents the extended
	// (transformed) view. Toggled exclusively by pcmw.ToExtended/ToOriginal.
	Extended bool

	// Terms is the number of nodes currently tagged TermProper,
	// maintained by KnotChg.
	Terms int

	// Node attributes.
	Term      []TermState // terminal-class tag
	Mark      []bool      // active/marked bookkeeping flag
	Grad      []int       // degree in edge pairs
	Prize     []float64   // PC/MW prize (PrizeUnset, Faraway sentinels)
	Term2Edge []int       // twin-arc index / NoTerm / FixedTerm / NonLeafTerm

	// Arc attributes.
	Tail    []int     // tail node per arc
	Head    []int     // head node per arc
	Cost    []float64 // arc cost (shifted in extended PC view)
	CostOrg []float64 // shadow of the unshifted costs; PC kinds only

	// Provenance: which original nodes / edge pairs a surviving slot
	// represents after repeated contraction. Nil means "only itself".
	// Edge ancestors are indexed by pair id (arc id / 2).
	NodeAncestors [][]int
	EdgeAncestors [][]int

	// Intrusive adjacency lists. outBeg/inBeg are per-node list heads;
	// outNext/outPrev chain arcs sharing a tail, inNext/inPrev arcs
	// sharing a head. Dead arcs carry outNext == eatFree.
	outBeg, inBeg    []int
	outNext, outPrev []int
	inNext, inPrev   []int
}

// New returns an empty Graph of the given kind with capacity hints for node
// and arc slots. Hints below zero are clamped to zero.
func New(kind GraphKind, nodeHint, arcHint int) *Graph {
	if nodeHint < 0 {
		nodeHint = 0
	}
	if arcHint < 0 {
		arcHint = 0
	}
	g := &Graph{
		Kind:   kind,
		Source: -1,

		Term:   make([]TermState, 0, nodeHint),
		Mark:   make([]bool, 0, nodeHint),
		Grad:   make([]int, 0, nodeHint),
		outBeg: make([]int, 0, nodeHint),
		inBeg:  make([]int, 0, nodeHint),

		Tail:    make([]int, 0, arcHint),
		Head:    make([]int, 0, arcHint),
		Cost:    make([]float64, 0, arcHint),
		outNext: make([]int, 0, arcHint),
		outPrev: make([]int, 0, arcHint),
		inNext:  make([]int, 0, arcHint),
		inPrev:  make([]int, 0, arcHint),
	}
	if kind.IsPcMw() {
		g.Prize = make([]float64, 0, nodeHint)
		g.Term2Edge = make([]int, 0, nodeHint)
	}
	return g
}

// NumNodes returns the number of node slots (live and severed).
func (g *Graph) NumNodes() int { return len(g.Term) }

// NumArcs returns the number of arc slots (live and deleted).
func (g *Graph) NumArcs() int { return len(g.Cost) }

// Flip returns the twin arc of e (the reverse direction of the same pair).
func Flip(e int) int { return e ^ 1 }

// PairID returns the edge-pair index of arc e, used for edge ancestors.
func PairID(e int) int { return e >> 1 }

// PrizeIsSet reports whether the prize of node k has been initialized.
func (g *Graph) PrizeIsSet(k int) bool { return g.Prize[k] != PrizeUnset }

// knotInRange panics with a diagnostic if k is not a valid node id.
// Range violations are programmer errors, not recoverable conditions.
func (g *Graph) knotInRange(k int) {
	if k < 0 || k >= len(g.Term) {
		panic(ErrKnotRange)
	}
}

// arcAlive panics with a diagnostic if e is not a live arc id.
func (g *Graph) arcAlive(e int) {
	if e < 0 || e >= len(g.Cost) || g.outNext[e] == eatFree {
		panic(ErrArcRange)
	}
}
