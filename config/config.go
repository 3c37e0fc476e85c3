// Package config centralizes process-wide configuration and the one-time
// global initialization the solver needs before it can run: the Zobrist
// random tables and the game-type registry both carry state that must be
// set up exactly once (and reset between independent test runs), so
// Config.Init is the single entry point for that, rather than leaving
// every caller to remember both steps. Values themselves are bound with
// spf13/viper the same way the teacher's settings layer does.
package config

import (
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
)

// Flag names, bound into viper so both a config file and the CLI's flag
// set can set them.
const (
	KeyFile             = "file"
	KeyRunTests         = "run-tests"
	KeyTestDirectory    = "test-directory"
	KeyOutfileName      = "outfile-name"
	KeyTestTimeout      = "test-timeout"
	KeyDryRun           = "dry-run"
	KeyClearTT          = "clear-tt"
	KeyCountSums        = "count-sums"
	KeyRandomTableSeed  = "random-table-seed"
	KeySubgameSplit     = "subgame-split"
	KeySimplifyBasicCGT = "simplify-basic-cgt"
	KeyTTSumgameIdxBits = "tt-sumgame-idx-bits"
	KeySilenceWarnings  = "silence-warnings"
	KeyCloud            = "cloud"
	KeyLambdaFunction   = "lambda-function-name"
)

// Config holds every CLI-tunable setting for a solver run.
type Config struct {
	v *viper.Viper
}

// New builds a Config with the solver's defaults and binds pflags onto
// it. Call Init once before using the config to run any search.
func New(flags *pflag.FlagSet) *Config {
	v := viper.New()
	v.SetDefault(KeyTestTimeout, 30*time.Second)
	v.SetDefault(KeyClearTT, true)
	v.SetDefault(KeySubgameSplit, true)
	v.SetDefault(KeySimplifyBasicCGT, true)
	v.SetDefault(KeyTTSumgameIdxBits, uint(20))
	v.SetDefault(KeyRandomTableSeed, uint64(0))
	if flags != nil {
		_ = v.BindPFlags(flags)
	}
	return &Config{v: v}
}

func (c *Config) GetString(key string) string     { return c.v.GetString(key) }
func (c *Config) GetBool(key string) bool         { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int           { return c.v.GetInt(key) }
func (c *Config) GetUint(key string) uint         { return uint(c.v.GetInt(key)) }
func (c *Config) GetUint64(key string) uint64     { return uint64(c.v.GetInt64(key)) }
func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// LoadYAMLFile merges a YAML settings file (e.g. a saved --test-directory
// profile) into the config, overriding defaults but not flags explicitly
// set on the command line. It is parsed with yaml.v3 directly rather than
// viper's own file-reading, since settings files here are a flat,
// hand-edited map rather than a nested application config.
func (c *Config) LoadYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, v := range m {
		c.v.SetDefault(k, v)
	}
	return nil
}

// Init performs the one-time process-global setup the solver depends on:
// initializing the Zobrist random tables and resetting the game-type
// registry so repeated
// runs in the same process (as in a test suite or a long-running worker)
// start from a clean slate. The configured seed is passed on to
// hashing.InitGlobalTables, which does not use it: the tables are always
// filled from a CSPRNG, so hash values differ from run to run.
func (c *Config) Init() {
	seed := c.GetUint64(KeyRandomTableSeed)
	hashing.InitGlobalTables(seed)
	game.ResetTypeRegistry()
}

// RegisterFlags adds every flag named in the CLI surface to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyFile, "", "case file to load")
	fs.Bool(KeyRunTests, false, "run every case file under --test-directory")
	fs.String(KeyTestDirectory, "", "directory of case files for --run-tests")
	fs.String(KeyOutfileName, "", "CSV file to write batch results to")
	fs.Duration(KeyTestTimeout, 30*time.Second, "per-case search timeout")
	fs.Bool(KeyDryRun, false, "parse and print cases without solving")
	fs.Bool(KeyClearTT, true, "clear the transposition table between cases (not read: every case gets a fresh table)")
	fs.Bool(KeyCountSums, false, "report the number of distinct sums visited (not read: no count is kept)")
	fs.Uint64(KeyRandomTableSeed, 0, "seed for the Zobrist random tables (not used: tables always come from a CSPRNG)")
	fs.Bool(KeySubgameSplit, true, "split subgames via Game.Split during search (not read: splitting is always on)")
	fs.Bool(KeySimplifyBasicCGT, true, "run the basic-CGT simplifier during search (not read: the simplifier always runs)")
	fs.Uint(KeyTTSumgameIdxBits, 20, "index bits for the sumgame transposition table (0 = auto-size from available memory)")
	fs.Bool(KeySilenceWarnings, false, "suppress non-fatal parse warnings")
	fs.Bool(KeyCloud, false, "dispatch solves to the configured Lambda endpoint")
	fs.String(KeyLambdaFunction, "mcgs-solve", "Lambda function name for --cloud")
}
