// Command mcgsshell is an interactive REPL for building up a sum of
// games by hand, playing and undoing moves in it, and solving it,
// without having to write a case file first.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/stripgame"
	"github.com/cgtgo/mcgs/sumgame"
)

func main() {
	hashing.InitGlobalTables(0)
	game.ResetTypeRegistry()

	rl, err := readline.New("mcgs> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	sh := &shell{sum: sumgame.New(), solver: sumgame.NewSolver(20)}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mcgsshell:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if err := sh.dispatch(args); err != nil {
			fmt.Fprintln(os.Stderr, "mcgsshell:", err)
		}
	}
}

type shell struct {
	sum    *sumgame.Sum
	solver *sumgame.Solver
}

func (sh *shell) dispatch(args []string) error {
	switch args[0] {
	case "add":
		return sh.cmdAdd(args[1:])
	case "print":
		sh.sum.Print(os.Stdout)
		return nil
	case "play":
		return sh.cmdPlay(args[1:])
	case "undo":
		return sh.cmdUndo()
	case "solve":
		return sh.cmdSolve()
	case "toplay":
		return sh.cmdToPlay(args[1:])
	case "quit", "exit":
		os.Exit(0)
	default:
		return fmt.Errorf("unknown command %q (try add, print, play, undo, solve, toplay, quit)", args[0])
	}
	return nil
}

// add <Type> <field,field,...> appends a new active subgame, e.g.
// "add Clobber1xN XOXO" or "add Kayles 7".
func (sh *shell) cmdAdd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: add <Type> <fields>")
	}
	ctor, ok := stripgame.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unregistered game type %q", args[0])
	}
	fields := strings.Split(args[1], ",")
	g, err := ctor(fields)
	if err != nil {
		return err
	}
	sh.sum = sumgame.New(append(sh.sum.ActiveGames(), g)...)
	return nil
}

// play <slot> <move-index> plays the move-index'th legal move (as listed
// by the subgame's own move generator) in the given active slot.
func (sh *shell) cmdPlay(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: play <slot> <move-index>")
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	active, slots := sh.sum.ActiveSlots()
	if slot < 0 || slot >= len(active) {
		return fmt.Errorf("slot %d out of range (0..%d)", slot, len(active)-1)
	}
	gen := active[slot].MoveGenerator(sh.sum.ToMove())
	for i := 0; gen.Next(); i++ {
		if i == idx {
			sh.sum.PlaySum(slots[slot], gen.Move())
			return nil
		}
	}
	return fmt.Errorf("move index %d out of range for slot %d", idx, slot)
}

func (sh *shell) cmdUndo() error {
	mark := sh.sum.Mark()
	if mark == 0 {
		return fmt.Errorf("nothing to undo")
	}
	sh.sum.UnwindTo(mark - 1)
	return nil
}

func (sh *shell) cmdSolve() error {
	win, err := sh.solver.Solve(sh.sum)
	if err != nil {
		return err
	}
	winner := sh.sum.ToMove()
	if !win {
		winner = winner.Opponent()
	}
	fmt.Printf("%v wins (%d nodes)\n", winner, sh.solver.Nodes())
	return nil
}

func (sh *shell) cmdToPlay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: toplay <B|W>")
	}
	switch strings.ToUpper(args[0]) {
	case "B":
		sh.sum.SetToMove(cgtbasics.Black)
	case "W":
		sh.sum.SetToMove(cgtbasics.White)
	default:
		return fmt.Errorf("unknown player %q", args[0])
	}
	return nil
}
