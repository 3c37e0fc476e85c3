// Package game defines the core abstraction every playable position
// implements: a Game can be played into and undone out of, can report its
// legal moves through a MoveGenerator, can (sometimes) split into
// independent pieces, and can contribute to a sum's canonical hash.
package game

import (
	"io"
	"reflect"
	"sync"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// TypeID is a stable, process-lifetime identifier for a concrete Game
// implementation, assigned lazily on first use. Order uses it to rank
// games of different types, and LocalHash mixes it in so that two
// different game types never collide by accident. (The simplifier's map
// view groups subgames with a Go type switch, not by TypeID.)
type TypeID int

var (
	typeRegistryMu sync.Mutex
	typeRegistry   = map[reflect.Type]TypeID{}
	nextTypeID     TypeID
)

// TypeOf returns the stable TypeID for T, assigning a fresh one the first
// time T is seen. T should be the concrete game struct, not an interface.
func TypeOf[T any]() TypeID {
	var zero T
	rt := reflect.TypeOf(zero)
	typeRegistryMu.Lock()
	defer typeRegistryMu.Unlock()
	if id, ok := typeRegistry[rt]; ok {
		return id
	}
	id := nextTypeID
	nextTypeID++
	typeRegistry[rt] = id
	return id
}

// ResetTypeRegistry clears all assigned TypeIDs. It exists for test
// isolation between independent solver runs within the same process.
func ResetTypeRegistry() {
	typeRegistryMu.Lock()
	defer typeRegistryMu.Unlock()
	typeRegistry = map[reflect.Type]TypeID{}
	nextTypeID = 0
}

// HashState tracks whether a game's cached local hash is trustworthy.
type HashState uint8

const (
	HashInvalid HashState = iota
	HashNeedsUpdate
	HashUpToDate
)

// MoveGenerator enumerates a player's legal moves from a fixed position.
// It is lazy (moves are produced one at a time via Next), finite, and not
// restartable: once exhausted it must not produce more moves, and its
// validity is only guaranteed between Play/UndoMove pairs, never across an
// uncompensated mutation of the underlying game.
type MoveGenerator interface {
	// Next advances to the next legal move and reports whether one was
	// found. It must be called before the first use of Move.
	Next() bool
	// Move returns the move found by the most recent Next call that
	// returned true.
	Move() move.Move
}

// Game is the interface every playable position implements, whether it is
// a concrete rule set (a strip of Clobber, a Kayles heap) or one of the
// basic-CGT value games (an integer, a nimber, a switch).
type Game interface {
	// Play applies m, which must have been produced by this game's own
	// MoveGenerator at the current position, pushing enough state onto an
	// internal undo stack that a single UndoMove call reverses it.
	Play(m move.Move)
	// UndoMove reverses the most recent Play call.
	UndoMove()
	// MoveGenerator returns a fresh generator for c's legal moves from the
	// current position.
	MoveGenerator(c cgtbasics.Color) MoveGenerator
	// Split returns the independent subgames this position decomposes
	// into, or (nil, false) if it does not split. A split must never
	// change the reachable option set: if a game's position is equal in
	// value to the sum of its parts but playing in one part can affect
	// moves available in another (e.g. up-star's "+2 is distinguishable
	// from a detached up and a detached star"), it must not split.
	Split() ([]Game, bool)
	// Inverse returns the negative of this game (Left and Right options
	// swapped throughout), used to build g - h as g + (-h).
	Inverse() Game
	// Order gives a total, type-stable ordering used to canonicalize a
	// sum's subgame list before hashing, so that permuting equal-valued
	// subgames never changes the sum's hash.
	Order(rhs Game) cgtbasics.Relation
	// Print writes a short human-readable position string.
	Print(w io.Writer)
	// Normalize and UndoNormalize rewrite a game in place into a
	// normalized form and later restore the previous form. Every game in
	// this module implements both as no-ops, and nothing calls them.
	Normalize()
	UndoNormalize()
	// LocalHash recomputes (or returns the cached) local hash for the
	// current position.
	LocalHash() uint64
	// TypeID returns this game's stable, registry-assigned type tag.
	TypeID() TypeID
}

// Base is an embeddable helper implementing the bookkeeping shared by
// almost every concrete Game: an active flag and a three-state hash
// freshness marker. It does not implement Play/UndoMove -- those remain
// entirely game-specific -- and does no checking of its own around them.
type Base struct {
	active    bool
	hashState HashState
	cached    uint64
}

// NewBase returns a Base marked active with an invalid cached hash.
func NewBase() Base {
	return Base{active: true, hashState: HashInvalid}
}

func (b *Base) Active() bool     { return b.active }
func (b *Base) SetActive(a bool) { b.active = a }

// InvalidateHash marks the cached local hash stale; the next LocalHash
// call on the embedding type must recompute it.
func (b *Base) InvalidateHash() { b.hashState = HashNeedsUpdate }

// CachedHash returns the previously computed hash and whether it is
// current.
func (b *Base) CachedHash() (uint64, bool) {
	return b.cached, b.hashState == HashUpToDate
}

// SetCachedHash stores a freshly computed hash as current.
func (b *Base) SetCachedHash(v uint64) {
	b.cached = v
	b.hashState = HashUpToDate
}

// ComputeLocalHash is a small helper for concrete games whose local hash
// is "type tag XOR one toggle per active cell/token": toggle is called
// once per occupied position with that position's value.
func ComputeLocalHash(typeID TypeID, toggles func(h *hashing.LocalHash)) uint64 {
	var h hashing.LocalHash
	h.ToggleType(int(typeID))
	toggles(&h)
	return h.Value()
}
