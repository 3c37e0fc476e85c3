// Package ttable implements a generic, open-addressed, direct-mapped
// transposition table. Each slot is selected by the low index-bits of a
// 64-bit key; the remaining bits are kept as a tag to detect collisions.
// A colliding store simply overwrites the existing entry -- there is no
// chaining and no eviction policy beyond "last write wins".
package ttable

import "github.com/pbnjay/memory"

// Entry is the payload type a Table stores. Implementations are typically
// small value structs (a search bound plus a flag), not pointers, so a
// Table of a few hundred thousand slots stays a single flat allocation.
type Entry interface {
	comparable
}

// Table is a transposition table over Entry values, addressed by a 64-bit
// key. indexBits controls the table size (1<<indexBits slots); the tag is
// whatever key bits remain above that, truncated to tagBits.
type Table[E Entry] struct {
	indexBits uint
	tagBits   uint
	entries   []E
	tags      []uint32
	occupied  []bool
	boolsArr  []uint32 // packed auxiliary bits, nBools per slot
	nBools    int
}

// New builds a table with 1<<indexBits slots. tagBits controls how many
// additional key bits are kept to disambiguate same-slot collisions
// (detection only; it does not resolve them). nBools is the number of
// independent auxiliary boolean flags stored per slot (e.g. "is this a
// fully-searched / exact entry").
func New[E Entry](indexBits, tagBits uint, nBools int) *Table[E] {
	if indexBits == 0 || indexBits > 40 {
		panic("ttable: indexBits out of range")
	}
	n := uint64(1) << indexBits
	return &Table[E]{
		indexBits: indexBits,
		tagBits:   tagBits,
		entries:   make([]E, n),
		tags:      make([]uint32, n),
		occupied:  make([]bool, n),
		boolsArr:  make([]uint32, n),
		nBools:    nBools,
	}
}

func (t *Table[E]) index(key uint64) uint64 {
	return key & (uint64(1)<<t.indexBits - 1)
}

func (t *Table[E]) tag(key uint64) uint32 {
	shifted := key >> t.indexBits
	mask := uint64(1)<<t.tagBits - 1
	return uint32(shifted & mask)
}

// Result is the outcome of a Get: Valid reports whether the slot held an
// entry matching key's tag (i.e. almost certainly the same position,
// modulo tag-bit collisions).
type Result[E Entry] struct {
	Valid bool
	Entry E
	idx   uint64
	bools uint32
}

// Get looks up key. If Valid is false, Entry is the zero value and should
// not be used.
func (t *Table[E]) Get(key uint64) Result[E] {
	idx := t.index(key)
	if !t.occupied[idx] || t.tags[idx] != t.tag(key) {
		return Result[E]{idx: idx}
	}
	return Result[E]{Valid: true, Entry: t.entries[idx], idx: idx, bools: t.boolsArr[idx]}
}

// GetBool reads one of the packed auxiliary bits from a prior Get's slot.
// It is only meaningful when the Result was Valid.
func (r Result[E]) GetBool(i int) bool {
	return r.bools&(1<<uint(i)) != 0
}

// Store writes an entry into key's slot, unconditionally overwriting
// whatever was there (collision-by-overwrite, no replacement policy).
func (t *Table[E]) Store(key uint64, e E, bools uint32) {
	idx := t.index(key)
	t.entries[idx] = e
	t.tags[idx] = t.tag(key)
	t.boolsArr[idx] = bools
	t.occupied[idx] = true
}

// Clear empties every slot without reallocating the backing arrays.
func (t *Table[E]) Clear() {
	for i := range t.occupied {
		t.occupied[i] = false
	}
}

// Len returns the number of addressable slots (1<<indexBits).
func (t *Table[E]) Len() int {
	return len(t.entries)
}

// AutoIndexBits picks an indexBits value for New so that the table's
// slots (each costing roughly bytesPerSlot) use at most the given
// fraction of total system memory, as reported by pbnjay/memory. This
// is the "auto-size the TT instead of making the user guess" counterpart
// to a fixed --tt-sumgame-idx-bits flag value; the result is clamped to
// the [10, 30] range so a constrained container still gets a usable
// table and a huge one doesn't overflow New's own 40-bit ceiling.
func AutoIndexBits(fractionOfTotal float64, bytesPerSlot uint64) uint {
	total := memory.TotalMemory()
	if total == 0 {
		return 20
	}
	budget := uint64(float64(total) * fractionOfTotal)
	if bytesPerSlot == 0 {
		bytesPerSlot = 1
	}
	slots := budget / bytesPerSlot
	bits := uint(0)
	for (uint64(1) << (bits + 1)) <= slots {
		bits++
	}
	if bits < 10 {
		bits = 10
	}
	if bits > 30 {
		bits = 30
	}
	return bits
}
