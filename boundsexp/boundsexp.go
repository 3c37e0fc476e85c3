// Package boundsexp lets an experiment script rank candidate sum-moves
// with a user-supplied Lua function, instead of the fixed left-to-right
// order the core solver searches in. It exists only for out-of-scope
// bounds-search experimentation (tuning move ordering to find game
// values faster in bulk experiments); the solver's own Solve/SolveWithTimeout
// path never imports this package.
package boundsexp

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/cgtgo/mcgs/move"
)

// Candidate is one legal move available to the player to move, in
// enough detail for a ranking script to judge it without access to the
// underlying game object.
type Candidate struct {
	Slot   int
	First  int
	Second int
	Mover  string
}

// Ranker evaluates a Lua scoring function against a list of candidates
// and reports their order by score, highest first. The script must define a
// global function `score(slot, first, second, mover)` returning a
// number; candidates are then sorted by that number descending.
type Ranker struct {
	state *lua.LState
}

// NewRanker loads script (Lua source) into a fresh interpreter state.
func NewRanker(script string) (*Ranker, error) {
	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("boundsexp: loading script: %w", err)
	}
	if L.GetGlobal("score").Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("boundsexp: script must define a global function `score`")
	}
	return &Ranker{state: L}, nil
}

// Close releases the interpreter.
func (r *Ranker) Close() { r.state.Close() }

// Score calls the script's scoring function for one candidate.
func (r *Ranker) Score(c Candidate) (float64, error) {
	L := r.state
	fn := L.GetGlobal("score")
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(c.Slot), lua.LNumber(c.First), lua.LNumber(c.Second), lua.LString(c.Mover)); err != nil {
		return 0, fmt.Errorf("boundsexp: calling score: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	num, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("boundsexp: score did not return a number, got %s", ret.Type())
	}
	return float64(num), nil
}

// Rank scores every candidate and returns their indices into candidates
// sorted by descending score.
func (r *Ranker) Rank(candidates []Candidate) ([]int, error) {
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		s, err := r.Score(c)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && scores[order[j]] > scores[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order, nil
}

// CandidateFromMove builds a Candidate from a decoded move.Move, for
// callers that already have one from a game's move generator.
func CandidateFromMove(slot int, m move.Move) Candidate {
	return Candidate{
		Slot:   slot,
		First:  m.First(),
		Second: m.Second(),
		Mover:  m.Color().String(),
	}
}
