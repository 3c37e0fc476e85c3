// Package hashing implements the Zobrist-style random tables and the
// local/global hash accumulators used to canonicalize game and sumgame
// state for the transposition table.
//
// https://en.wikipedia.org/wiki/Zobrist_hashing
package hashing

import (
	"sync"

	"lukechampine.com/frand"

	"github.com/cgtgo/mcgs/cgtbasics"
)

const bignum = 1<<63 - 2

// entriesPerPosition bounds how many distinct per-position values a single
// game type can toggle (tile counts, chip counts, and so on). Values
// outside this range are byte-decomposed by ToggleValue.
const entriesPerPosition = 256

// RandomTable is a lazily growing table of random uint64s, one row per
// position, each row holding entriesPerPosition random values. Rows are
// generated on first access and never change afterwards, so a RandomTable
// may be read concurrently once warmed; growth itself is serialized.
type RandomTable struct {
	mu   sync.Mutex
	rows [][entriesPerPosition]uint64
}

// NewRandomTable returns an empty table; rows grow on demand.
func NewRandomTable() *RandomTable {
	return &RandomTable{}
}

func (t *RandomTable) ensure(position int) {
	if position < len(t.rows) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for position >= len(t.rows) {
		var row [entriesPerPosition]uint64
		for i := range row {
			row[i] = frand.Uint64n(bignum) + 1
		}
		t.rows = append(t.rows, row)
	}
}

// Get returns the random value for the given position and value index.
// value is masked into [0, entriesPerPosition).
func (t *RandomTable) Get(position int, value int) uint64 {
	t.ensure(position)
	return t.rows[position][uint(value)&(entriesPerPosition-1)]
}

// ToggleValue XORs in (or out, XOR is its own inverse) the contribution of
// a multi-byte value at a position, byte by byte, so values wider than
// entriesPerPosition can still be represented without growing the table's
// per-row width.
func ToggleValue(t *RandomTable, key uint64, position int, value int) uint64 {
	v := uint64(value)
	idx := 0
	if v == 0 {
		return key ^ t.Get(position*8, 0)
	}
	for v != 0 {
		key ^= t.Get(position*8+idx, int(v&0xff))
		v >>= 8
		idx++
	}
	return key
}

// Named global random tables, one per concern, mirroring the original
// project's global_random_table_id enumeration: a table keyed purely by
// position/value for game contents, one for game type tags (mixed in by
// LocalHash.ToggleType), one for the per-slot twist GlobalHash applies to
// each subgame's local hash, and one coin-flip value for whose turn it is.
var (
	TableDefault  = NewRandomTable()
	TableType     = NewRandomTable()
	TableModifier = NewRandomTable()
	tableInit     sync.Once
	toMoveValue   uint64
)

// InitGlobalTables seeds the process-wide random tables. It is idempotent:
// later calls are no-ops, matching the "concentrate global mutable state in
// a single initialisation entry point" design rule. The seed parameter is
// accepted for API symmetry with a reproducible-test mode but frand always
// draws from a CSPRNG; deterministic replay, if ever needed, would swap
// frand for a seeded math/rand source here.
func InitGlobalTables(seed uint64) {
	tableInit.Do(func() {
		toMoveValue = frand.Uint64n(bignum) + 1
	})
}

// ToMoveValue returns the fixed random value XORed in when it is White's
// (the minimizing/second) move.
func ToMoveValue() uint64 {
	tableInit.Do(func() { toMoveValue = frand.Uint64n(bignum) + 1 })
	return toMoveValue
}

// LocalHash accumulates a single game's position hash: one XOR toggle per
// occupied cell/chip/value, plus the game's type tag.
type LocalHash struct {
	value uint64
}

// Reset clears the hash back to empty (value 0 means "no contribution").
func (h *LocalHash) Reset() { h.value = 0 }

// TogglePosition XORs a (position, value) pair's contribution in or out.
func (h *LocalHash) TogglePosition(position, value int) {
	h.value = ToggleValue(TableDefault, h.value, position, value)
}

// ToggleType mixes in a game type tag so that two different game types
// that happen to produce the same position toggles still hash apart.
func (h *LocalHash) ToggleType(typeID int) {
	h.value ^= TableType.Get(0, typeID)
}

// Value returns the accumulated hash.
func (h *LocalHash) Value() uint64 { return h.value }

// GlobalHash combines the local hashes of every active subgame in a sum,
// plus whose turn it is, into one sum-level hash. Subgames are added and
// removed by slot index so that removing one (e.g. a game that became a
// terminal zero and was pruned) doesn't require rehashing the rest.
type GlobalHash struct {
	subgameHashes []uint64
	valid         []bool
	value         uint64
	toMove        cgtbasics.Color
}

// NewGlobalHash returns an empty GlobalHash with Black to move.
func NewGlobalHash() *GlobalHash {
	return &GlobalHash{toMove: cgtbasics.Black}
}

// Reset clears the hash back to empty.
func (g *GlobalHash) Reset() {
	g.subgameHashes = g.subgameHashes[:0]
	g.valid = g.valid[:0]
	g.value = 0
	g.toMove = cgtbasics.Black
}

func (g *GlobalHash) resize(n int) {
	for len(g.subgameHashes) <= n {
		g.subgameHashes = append(g.subgameHashes, 0)
		g.valid = append(g.valid, false)
	}
}

// AddSubgame mixes in a subgame's local hash at the given slot, tagged by
// its position in the sum (so permutation-sensitive hashing is avoided by
// always sorting subgames into canonical order before calling this).
func (g *GlobalHash) AddSubgame(slot int, localHash uint64) {
	g.resize(slot)
	if g.valid[slot] {
		panic("hashing: slot already occupied in global hash")
	}
	twisted := ToggleValue(TableModifier, 0, slot, 0) ^ localHash
	g.value ^= twisted
	g.subgameHashes[slot] = twisted
	g.valid[slot] = true
}

// RemoveSubgame undoes a previous AddSubgame at the given slot.
func (g *GlobalHash) RemoveSubgame(slot int) {
	if slot >= len(g.valid) || !g.valid[slot] {
		panic("hashing: slot not occupied in global hash")
	}
	g.value ^= g.subgameHashes[slot]
	g.subgameHashes[slot] = 0
	g.valid[slot] = false
}

// SetToMove records whose turn it is, toggling the to-move contribution.
func (g *GlobalHash) SetToMove(c cgtbasics.Color) {
	if c == g.toMove {
		return
	}
	g.value ^= ToMoveValue()
	g.toMove = c
}

// Value returns the accumulated hash.
func (g *GlobalHash) Value() uint64 { return g.value }
