// Package natsworker fans a batch of cases out to a pool of worker
// processes over NATS, for a --run-tests directory too large for one
// process to churn through serially. A coordinator publishes one
// request per case to a subject; any number of workers subscribed to
// that subject pick up requests and reply with a solved report.Result.
// Each worker wraps its parse-and-solve step in avast/retry-go, making
// up to the configured number of attempts before replying with an error.
package natsworker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/nats-io/nats.go"

	"github.com/cgtgo/mcgs/caseio"
	"github.com/cgtgo/mcgs/casesolve"
	"github.com/cgtgo/mcgs/report"
)

// Subject is the default NATS subject cases are published and consumed
// on.
const Subject = "mcgs.solve"

// request is the wire format published for each case.
type request struct {
	FileLabel  string `json:"fileLabel"`
	CaseLabel  string `json:"caseLabel"`
	CaseText   string `json:"caseText"` // a single-case case-file fragment
	TimeoutSec int    `json:"timeoutSec"`
}

// reply is the wire format a worker sends back.
type reply struct {
	Status    string  `json:"status"`
	Actual    string  `json:"actual"`
	Expected  string  `json:"expected"`
	TimeMS    float64 `json:"timeMs"`
	NodeCount uint64  `json:"nodeCount"`
	Comments  string  `json:"comments,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Worker subscribes to Subject and solves whatever requests arrive.
type Worker struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	retries uint
}

// NewWorker connects to a NATS server at url and starts handling
// requests published on Subject. Call Close to unsubscribe and
// disconnect.
func NewWorker(url string, retries uint) (*Worker, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("natsworker: connecting to %s: %w", url, err)
	}
	w := &Worker{nc: nc, retries: retries}
	sub, err := nc.Subscribe(Subject, w.handle)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("natsworker: subscribing: %w", err)
	}
	w.sub = sub
	return w, nil
}

func (w *Worker) handle(msg *nats.Msg) {
	var req request
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		w.respondError(msg, err)
		return
	}

	var result report.Result
	err := retry.Do(func() error {
		cases, err := caseio.ParseCases(strings.NewReader(req.CaseText))
		if err != nil {
			return err
		}
		if len(cases) != 1 {
			return fmt.Errorf("natsworker: expected exactly one case, got %d", len(cases))
		}
		result = casesolve.Run(context.Background(), cases[0], casesolve.Options{
			Timeout:     time.Duration(req.TimeoutSec) * time.Second,
			TTIndexBits: 20,
			CaseLabel:   req.CaseLabel,
			FileLabel:   req.FileLabel,
		})
		return nil
	}, retry.Attempts(w.retries))
	if err != nil {
		w.respondError(msg, err)
		return
	}

	r := reply{
		Status:    result.Status.String(),
		Actual:    result.Actual.String(),
		Expected:  result.Expected.String(),
		TimeMS:    result.TimeMS,
		NodeCount: result.NodeCount,
		Comments:  result.Comments,
	}
	data, err := json.Marshal(r)
	if err != nil {
		w.respondError(msg, err)
		return
	}
	_ = msg.Respond(data)
}

func (w *Worker) respondError(msg *nats.Msg, err error) {
	data, _ := json.Marshal(reply{Status: "ERROR", Error: err.Error()})
	_ = msg.Respond(data)
}

// Close unsubscribes and disconnects.
func (w *Worker) Close() {
	if w.sub != nil {
		_ = w.sub.Unsubscribe()
	}
	w.nc.Close()
}

// Coordinator publishes cases for workers to solve and collects their
// replies.
type Coordinator struct {
	nc *nats.Conn
}

// NewCoordinator connects to a NATS server at url.
func NewCoordinator(url string) (*Coordinator, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("natsworker: connecting to %s: %w", url, err)
	}
	return &Coordinator{nc: nc}, nil
}

// Solve publishes one request per case and waits (up to timeout) for
// each reply in turn, translating it back into a report.Result.
func (co *Coordinator) Solve(fileLabel string, cases []caseio.Case, caseTexts []string, timeout time.Duration) ([]report.Result, error) {
	if len(cases) != len(caseTexts) {
		return nil, fmt.Errorf("natsworker: cases and caseTexts length mismatch")
	}
	results := make([]report.Result, 0, len(cases))
	for i, c := range cases {
		label := fmt.Sprintf("%d", i+1)
		req := request{
			FileLabel:  fileLabel,
			CaseLabel:  label,
			CaseText:   caseTexts[i],
			TimeoutSec: int(timeout.Seconds()),
		}
		data, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}
		msg, err := co.nc.Request(Subject, data, timeout+5*time.Second)
		if err != nil {
			return nil, fmt.Errorf("natsworker: case %s: %w", label, err)
		}
		var r reply
		if err := json.Unmarshal(msg.Data, &r); err != nil {
			return nil, fmt.Errorf("natsworker: case %s: decoding reply: %w", label, err)
		}
		results = append(results, report.Result{
			File:      fileLabel,
			Case:      label,
			Games:     len(c.Games),
			Player:    c.ToPlay,
			Expected:  c.Expected,
			TimeMS:    r.TimeMS,
			NodeCount: r.NodeCount,
			Comments:  r.Comments,
			Status:    parseStatus(r.Status),
		})
	}
	return results, nil
}

// Close disconnects.
func (co *Coordinator) Close() { co.nc.Close() }

func parseStatus(s string) report.Status {
	switch s {
	case "PASS":
		return report.StatusPass
	case "FAIL":
		return report.StatusFail
	case "ERROR":
		return report.StatusError
	default:
		return report.StatusUnknown
	}
}
