// Package caseio parses the solver's case-file grammar: a `{version N}`
// token, then a stream of cases each made of `[Type](board)` game tokens,
// an optional `{command}` expected-result token, and `/comment/` free
// text. It is the concrete external collaborator that lets the CLI run
// real test suites end to end; the core solver never imports it.
//
// Grounded on gcgio/gcg.go's legacy-encoding tolerance: case files in the
// wild may be saved in ISO-8859-1 rather than UTF-8, so the reader is
// transparently transcoded the same way GCG files are.
package caseio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/report"
	"github.com/cgtgo/mcgs/stripgame"
)

// Case is one parsed line of games to sum together, plus whatever
// expected-result command and comment accompanied it.
type Case struct {
	ToPlay     cgtbasics.Color
	Expected   report.Outcome
	Games      []game.Game
	Comment    string
	Line       int
	Impartial  bool // true for a "{N}" command: solve via nimber search, not boolean minimax
}

var (
	versionRe = regexp.MustCompile(`^\{version\s+(\d+)\}\s*$`)
	gameRe    = regexp.MustCompile(`\[(\w+)\]\(([^)]*)\)`)
	commandRe = regexp.MustCompile(`\{([^}]*)\}`)
	commentRe = regexp.MustCompile(`/([^/]*)/`)
)

// ParseFile opens path and parses it, transcoding from ISO-8859-1 if the
// bytes are not valid UTF-8 (the file format's legacy default, exactly as
// GCG files are).
func ParseFile(path string, open func(string) (io.ReadCloser, error)) ([]Case, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ParseCases(r)
}

// ParseCases reads a full case-file stream. A `{version N}` token may
// appear once, before the first case; every other line that is not blank
// and not only a /comment/ is parsed as one Case.
func ParseCases(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("caseio: decoding legacy encoding: %w", err)
		}
		data = decoded
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	var cases []Case
	lineNo := 0
	sawVersion := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := versionRe.FindStringSubmatch(line); m != nil {
			if sawVersion || len(cases) > 0 {
				return nil, fmt.Errorf("caseio: line %d: {version N} must be the first token in the file", lineNo)
			}
			sawVersion = true
			continue
		}
		if strings.TrimSpace(commentRe.ReplaceAllString(line, "")) == "" {
			continue
		}
		c, err := parseCaseLine(line)
		if err != nil {
			return nil, fmt.Errorf("caseio: line %d: %w", lineNo, err)
		}
		c.Line = lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseCaseLine(line string) (Case, error) {
	var c Case
	c.ToPlay = cgtbasics.Black

	if m := commentRe.FindStringSubmatch(line); m != nil {
		c.Comment = m[1]
		line = commentRe.ReplaceAllString(line, "")
	}

	var cmdToken string
	if m := commandRe.FindStringSubmatch(line); m != nil {
		cmdToken = strings.TrimSpace(m[1])
		line = commandRe.ReplaceAllString(line, "")
	}

	matches := gameRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return c, fmt.Errorf("no [Type](board) game tokens found")
	}
	for _, m := range matches {
		typeName, boardToken := m[1], m[2]
		ctor, ok := stripgame.Lookup(typeName)
		if !ok {
			return c, fmt.Errorf("unregistered game type %q", typeName)
		}
		fields := splitFields(boardToken)
		g, err := ctor(fields)
		if err != nil {
			return c, err
		}
		c.Games = append(c.Games, g)
	}

	if cmdToken != "" {
		if strings.Fields(cmdToken)[0] == "N" {
			c.Impartial = true
		} else {
			outcome, toPlay, err := parseCommand(cmdToken)
			if err != nil {
				return c, err
			}
			c.Expected = outcome
			if toPlay != cgtbasics.Empty {
				c.ToPlay = toPlay
			}
		}
	}

	return c, nil
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseCommand parses one of "{B win}", "{W loss}", "{B *n}"; the
// impartial "{N}" command is recognised by parseCaseLine before this is
// called.
func parseCommand(tok string) (report.Outcome, cgtbasics.Color, error) {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return report.Outcome{}, cgtbasics.Empty, fmt.Errorf("empty command token")
	}
	var toPlay cgtbasics.Color
	switch fields[0] {
	case "B":
		toPlay = cgtbasics.Black
	case "W":
		toPlay = cgtbasics.White
	default:
		return report.Outcome{}, cgtbasics.Empty, fmt.Errorf("unknown command player %q", fields[0])
	}
	if len(fields) != 2 {
		return report.Outcome{}, cgtbasics.Empty, fmt.Errorf("malformed command %q", tok)
	}
	switch fields[1] {
	case "win":
		return report.Outcome{Kind: report.OutcomeWinLoss, Win: true}, toPlay, nil
	case "loss":
		return report.Outcome{Kind: report.OutcomeWinLoss, Win: false}, toPlay, nil
	default:
		if strings.HasPrefix(fields[1], "*") {
			n, err := strconv.Atoi(fields[1][1:])
			if err != nil {
				return report.Outcome{}, cgtbasics.Empty, fmt.Errorf("malformed nimber %q: %w", fields[1], err)
			}
			return report.Outcome{Kind: report.OutcomeNimber, Nimber: n}, toPlay, nil
		}
		return report.Outcome{}, cgtbasics.Empty, fmt.Errorf("unknown command result %q", fields[1])
	}
}
