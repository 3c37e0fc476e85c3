// Package casesolve drives a single parsed case through the right
// solver (boolean minimax for a partizan case, nimber search for an
// impartial one) and packages the outcome as a report.Result. It is the
// shared core behind the CLI, the Lambda handler, and the NATS worker,
// so all three batch-run the same way.
package casesolve

import (
	"context"
	"fmt"
	"time"

	"github.com/cgtgo/mcgs/caseio"
	"github.com/cgtgo/mcgs/report"
	"github.com/cgtgo/mcgs/sumgame"
	"github.com/cgtgo/mcgs/sumgame/impartial"
	"github.com/cgtgo/mcgs/ttable"
)

// Options configures a single solve.
type Options struct {
	Timeout     time.Duration
	TTIndexBits uint
	CaseLabel   string
	FileLabel   string
}

// Run solves c and classifies the result against c.Expected, if any.
func Run(ctx context.Context, c caseio.Case, opts Options) report.Result {
	r := report.Result{
		File:     opts.FileLabel,
		Case:     opts.CaseLabel,
		Games:    len(c.Games),
		Player:   c.ToPlay,
		Expected: c.Expected,
		Comments: c.Comment,
	}

	start := time.Now()
	var actual report.Outcome
	var nodeCount uint64
	var err error

	if c.Impartial {
		actual, err = runImpartial(ctx, c)
	} else {
		actual, nodeCount, err = runPartizan(c, opts)
	}
	r.TimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	r.NodeCount = nodeCount

	if err != nil {
		r.Status = report.StatusError
		r.Comments = joinComments(r.Comments, err.Error())
		return r
	}
	r.Actual = actual

	if c.Expected.Kind == report.OutcomeNone {
		r.Status = report.StatusUnknown
	} else if outcomesMatch(c.Expected, actual) {
		r.Status = report.StatusPass
	} else {
		r.Status = report.StatusFail
	}
	return r
}

func runPartizan(c caseio.Case, opts Options) (report.Outcome, uint64, error) {
	sum := sumgame.New(c.Games...)
	sum.SetToMove(c.ToPlay)
	solver := sumgame.NewSolver(opts.TTIndexBits)
	win, err := solver.SolveWithTimeout(sum, opts.Timeout)
	if err != nil {
		return report.Outcome{}, 0, err
	}
	return report.Outcome{Kind: report.OutcomeWinLoss, Win: win}, solver.Nodes(), nil
}

func runImpartial(ctx context.Context, c caseio.Case) (report.Outcome, error) {
	games := make([]impartial.Game, 0, len(c.Games))
	for _, g := range c.Games {
		games = append(games, impartial.WrapPartizan(g))
	}
	tt := ttable.New[impartial.NimEntry](16, 24, 0)
	v, err := impartial.SumNimValue(ctx, games, tt)
	if err != nil {
		return report.Outcome{}, err
	}
	return report.Outcome{Kind: report.OutcomeNimber, Nimber: v}, nil
}

func outcomesMatch(a, b report.Outcome) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case report.OutcomeWinLoss:
		return a.Win == b.Win
	case report.OutcomeNimber:
		return a.Nimber == b.Nimber
	default:
		return true
	}
}

func joinComments(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return fmt.Sprintf("%s; %s", existing, extra)
}
