// Package aoc runs line-oriented Advent of Code solvers: it reads the
// puzzle input named on the command line, scores it one line at a time
// and prints the sum. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ModeEnv is the environment variable that selects Extended mode. Its
// value is ignored; only its presence matters.
const ModeEnv = "PART2"

// Mode selects which part of a puzzle a solver answers.
type Mode int

const (
	Simple   Mode = iota // part 1
	Extended             // part 2
)

func (m Mode) String() string {
	switch m {
	case Simple:
		return "simple"
	case Extended:
		return "extended"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "extended":
		return Extended, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// ErrUsage is returned by ParseConfig when the command line is wrong.
var ErrUsage = errors.New("want exactly one input file argument")

// Config is everything a run needs to know.
type Config struct {
	Path string
	Mode Mode
}

// ParseConfig builds a Config from the process arguments (including
// the program name) and an environment lookup such as os.LookupEnv.
func ParseConfig(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) != 2 {
		return Config{}, fmt.Errorf("%w, got %d", ErrUsage, max(len(args)-1, 0))
	}
	cfg := Config{Path: args[1]}
	if _, ok := lookupEnv(ModeEnv); ok {
		cfg.Mode = Extended
	}
	return cfg, nil
}

// Puzzle is a single run over one input file.
type Puzzle struct {
	Config

	out    io.Writer
	input  []byte
	loaded bool
}

// NewPuzzle returns a Puzzle that prints to out.
func NewPuzzle(cfg Config, out io.Writer) *Puzzle {
	return &Puzzle{Config: cfg, out: out}
}

// Input returns the contents of the input file. The file is read once.
func (p *Puzzle) Input() ([]byte, error) {
	if !p.loaded {
		b, err := os.ReadFile(p.Path)
		if err != nil {
			return nil, err
		}
		p.input, p.loaded = b, true
	}
	return p.input, nil
}

func (p *Puzzle) Scanner() (*bufio.Scanner, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	return newScanner(in), nil
}

// newScanner returns a line scanner over b that accepts a line as long
// as b itself.
func newScanner(b []byte) *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(nil, max(len(b)+1, bufio.MaxScanTokenSize))
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) error {
	s, err := p.Scanner()
	if err != nil {
		return err
	}
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) error {
	return p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the lines of input, without line terminators.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(line string) { lines = append(lines, line) })
	return lines, err
}

func (p *Puzzle) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func linesOf(b []byte) ([]string, error) {
	var lines []string
	s := newScanner(b)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

// LineScorer scores one line of puzzle input.
type LineScorer func(line string) (uint64, error)

// Solver answers a puzzle by scoring each line and summing the scores.
type Solver struct {
	// Scorer returns the LineScorer for mode. It is called once per
	// run, so it is the place to do per-mode setup.
	Scorer func(mode Mode) LineScorer

	// Echo prints every line followed by its score.
	Echo bool
}

// Scores scores every line. Lines are scored concurrently; the first
// error in line order is returned.
func (s Solver) Scores(mode Mode, lines []string) ([]uint64, error) {
	type result struct {
		v   uint64
		err error
	}
	score := s.Scorer(mode)
	res := Parallel(lines, func(line string) result {
		v, err := score(line)
		return result{v, err}
	})
	scores := make([]uint64, len(res))
	for i, r := range res {
		if r.err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, r.err)
		}
		scores[i] = r.v
	}
	return scores, nil
}

// Solve returns the answer for p.
func (s Solver) Solve(p *Puzzle) (uint64, error) {
	lines, err := p.Lines()
	if err != nil {
		return 0, err
	}
	scores, err := s.Scores(p.Mode, lines)
	if err != nil {
		return 0, err
	}
	if s.Echo {
		for i, line := range lines {
			p.Printf("%s %d", line, scores[i])
		}
	}
	return Sum(scores...), nil
}

// Run solves the puzzle described by cfg, writing progress to out.
func Run(cfg Config, out io.Writer, s Solver) (uint64, error) {
	p := NewPuzzle(cfg, out)
	p.Printf("In file %s", cfg.Path)
	return s.Solve(p)
}

// Main is the entire main function of a solver command. It exits the
// process on error.
func Main(s Solver) {
	log.SetFlags(0)
	cfg, err := ParseConfig(os.Args, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s <input-file>\n", filepath.Base(os.Args[0]))
		log.Fatalf("Problem parsing arguments: %v", err)
	}
	answer, err := Run(cfg, os.Stdout, s)
	if err != nil {
		log.Fatalf("Application error: %v", err)
	}
	fmt.Printf("Answer: %d\n", answer)
}
