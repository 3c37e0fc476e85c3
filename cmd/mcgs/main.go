// Command mcgs is the solver's command-line entry point: solve a single
// case file, or run every case file under a test directory and report a
// pass/fail summary, optionally dispatching each case to a Lambda
// endpoint instead of solving in-process.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/cgtgo/mcgs/caseio"
	"github.com/cgtgo/mcgs/casesolve"
	"github.com/cgtgo/mcgs/cloudclient"
	"github.com/cgtgo/mcgs/config"
	"github.com/cgtgo/mcgs/report"
	"github.com/cgtgo/mcgs/ttable"
)

// bytesPerTTSlot approximates a sumgame.BoolEntry slot's footprint
// (entry + tag + occupied + packed bools) for AutoIndexBits sizing.
const bytesPerTTSlot = 16

func main() {
	fs := pflag.NewFlagSet("mcgs", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("parsing flags")
	}

	cfg := config.New(fs)
	if cfg.GetBool(config.KeySilenceWarnings) {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	cfg.Init()

	var results []report.Result
	var err error
	switch {
	case cfg.GetBool(config.KeyRunTests):
		results, err = runTestDirectory(cfg)
	case cfg.GetString(config.KeyFile) != "":
		results, err = runFile(cfg, cfg.GetString(config.KeyFile))
	default:
		fmt.Fprintln(os.Stderr, "usage: mcgs --file <case-file> | --run-tests --test-directory <dir>")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solving")
	}

	if out := cfg.GetString(config.KeyOutfileName); out != "" {
		if err := writeCSV(out, results); err != nil {
			log.Fatal().Err(err).Msg("writing CSV output")
		}
	}

	summary := report.Summarize(results)
	summary.Print(os.Stdout)
	if summary.Failed > 0 || summary.Errored > 0 {
		os.Exit(1)
	}
}

func runFile(cfg *config.Config, path string) ([]report.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return solveCases(cfg, path, f)
}

func runTestDirectory(cfg *config.Config) ([]report.Result, error) {
	dir := cfg.GetString(config.KeyTestDirectory)
	if dir == "" {
		return nil, fmt.Errorf("--run-tests requires --test-directory")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var all []report.Result
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		results, err := runFile(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, results...)
	}
	return all, nil
}

func solveCases(cfg *config.Config, fileLabel string, r io.Reader) ([]report.Result, error) {
	if cfg.GetBool(config.KeyCloud) {
		text, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return solveCasesRemote(cfg, fileLabel, string(text))
	}

	cases, err := caseio.ParseCases(r)
	if err != nil {
		return nil, err
	}
	if cfg.GetBool(config.KeyDryRun) {
		for i, c := range cases {
			fmt.Printf("case %d: %d game(s), to-play=%v\n", i+1, len(c.Games), c.ToPlay)
		}
		return nil, nil
	}

	idxBits := cfg.GetUint(config.KeyTTSumgameIdxBits)
	if idxBits == 0 {
		idxBits = ttable.AutoIndexBits(0.1, bytesPerTTSlot)
	}
	opts := casesolve.Options{
		Timeout:     cfg.GetDuration(config.KeyTestTimeout),
		TTIndexBits: idxBits,
		FileLabel:   fileLabel,
	}
	ctx := context.Background()
	results := make([]report.Result, 0, len(cases))
	for i, c := range cases {
		opts.CaseLabel = fmt.Sprintf("%d", i+1)
		results = append(results, casesolve.Run(ctx, c, opts))
	}
	return results, nil
}

// solveCasesRemote ships the raw case-file text to the configured Lambda
// function instead of solving in-process, then translates its reply back
// into the same report.Result shape a local run produces.
func solveCasesRemote(cfg *config.Config, fileLabel, text string) ([]report.Result, error) {
	ctx := context.Background()
	client, err := cloudclient.New(ctx, cfg.GetString(config.KeyLambdaFunction))
	if err != nil {
		return nil, err
	}
	resp, err := client.Solve(ctx, text, int(cfg.GetDuration(config.KeyTestTimeout).Seconds()))
	if err != nil {
		return nil, err
	}
	results := make([]report.Result, 0, len(resp.Results))
	for _, cr := range resp.Results {
		results = append(results, report.Result{
			File:      fileLabel,
			Case:      cr.Case,
			Games:     cr.Games,
			TimeMS:    cr.TimeMS,
			NodeCount: cr.NodeCount,
			Comments:  cr.Comments,
			Status:    parseStatus(cr.Status),
		})
	}
	return results, nil
}

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

func writeCSV(path string, results []report.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := report.NewCSVWriter(f)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := w.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}
