// Command mcgs-lambda runs the solver as an AWS Lambda function: the
// payload carries the text of a case file, the response lists the outcome
// of every case in it. It is invoked either directly (as a Lambda trigger) or
// by the batch CLI's --cloud flag, via aws-sdk-go-v2's Lambda client.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/cgtgo/mcgs/caseio"
	"github.com/cgtgo/mcgs/casesolve"
	"github.com/cgtgo/mcgs/config"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/report"
)

// Request is the payload a caller sends: the raw text of a case file
// (one or more lines), plus the per-case search timeout in seconds.
type Request struct {
	CaseFile   string `json:"caseFile"`
	TimeoutSec int    `json:"timeoutSec"`
}

// Response is what the handler returns for each case parsed out of
// Request.CaseFile.
type Response struct {
	Results []CaseResult `json:"results"`
}

// CaseResult is a JSON-friendly projection of a report.Result: the
// domain types (cgtbasics.Color, report.Outcome) don't carry JSON tags
// of their own, since nothing else in the solver needs to serialize
// them, so the handler flattens them to strings at the boundary.
type CaseResult struct {
	Case      string  `json:"case"`
	Games     int     `json:"games"`
	Player    string  `json:"player"`
	Expected  string  `json:"expected"`
	Actual    string  `json:"actual"`
	Status    string  `json:"status"`
	TimeMS    float64 `json:"timeMs"`
	NodeCount uint64  `json:"nodeCount"`
	Comments  string  `json:"comments,omitempty"`
}

var initialized bool

func handle(ctx context.Context, req Request) (Response, error) {
	if !initialized {
		hashing.InitGlobalTables(0)
		game.ResetTypeRegistry()
		initialized = true
	}

	cases, err := caseio.ParseCases(strings.NewReader(req.CaseFile))
	if err != nil {
		return Response{}, fmt.Errorf("mcgs-lambda: parsing case file: %w", err)
	}

	timeout := config.New(nil).GetDuration(config.KeyTestTimeout)
	if req.TimeoutSec > 0 {
		timeout = time.Duration(req.TimeoutSec) * time.Second
	}

	resp := Response{Results: make([]CaseResult, 0, len(cases))}
	for i, c := range cases {
		r := casesolve.Run(ctx, c, casesolve.Options{
			Timeout:     timeout,
			TTIndexBits: 20,
			CaseLabel:   fmt.Sprintf("%d", i+1),
			FileLabel:   "lambda",
		})
		resp.Results = append(resp.Results, toCaseResult(r))
	}
	return resp, nil
}

func toCaseResult(r report.Result) CaseResult {
	return CaseResult{
		Case:      r.Case,
		Games:     r.Games,
		Player:    r.Player.String(),
		Expected:  r.Expected.String(),
		Actual:    r.Actual.String(),
		Status:    r.Status.String(),
		TimeMS:    r.TimeMS,
		NodeCount: r.NodeCount,
		Comments:  r.Comments,
	}
}

func main() {
	lambda.Start(handle)
}
