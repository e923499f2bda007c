package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Sample is a puzzle example embedded in a solver's doc comment:
//
//	/*
//	want=142
//
//	1abc2
//	treb7uchet
//	*/
//
// A "mode=extended" after the wanted answer runs the sample in Extended
// mode. A sample with no input reuses the input of the one before it.
type Sample struct {
	Mode  Mode
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=(\S*)(?:[ \t]+mode=(\w+))?[ \t]*(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample Sample, ok bool, err error) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false, nil
	}
	s := Sample{
		Want:  m[1],
		Input: m[3],
	}
	if m[2] != "" {
		if s.Mode, err = ParseMode(m[2]); err != nil {
			return Sample{}, false, err
		}
	}
	return s, true, nil
}

// Samples returns the samples found in the doc comments of the
// functions in src, keyed by function name.
func Samples(src []byte) (map[string][]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string][]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok, err := parseSample(c.Text)
			if err != nil {
				return nil, fmt.Errorf("sample for %s: %w", funcName, err)
			}
			if !ok {
				continue
			}
			if s.Input == "" {
				s.Input = lastInput
			}
			if s.Input == "" {
				return nil, fmt.Errorf("sample for %s has no input", funcName)
			}
			samples[funcName] = append(samples[funcName], s)
			lastInput = s.Input
		}
	}
	return samples, nil
}

// CheckSamples runs s against every sample in src and reports the first
// one whose answer doesn't match.
func CheckSamples(src []byte, s Solver) error {
	samples, err := Samples(src)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples found")
	}
	names := maps.Keys(samples)
	slices.Sort(names)
	for _, name := range names {
		for _, sm := range samples[name] {
			lines, err := linesOf([]byte(sm.Input))
			if err != nil {
				return err
			}
			scores, err := s.Scores(sm.Mode, lines)
			if err != nil {
				return fmt.Errorf("%s (%v) sample: %w", name, sm.Mode, err)
			}
			if got := fmt.Sprint(Sum(scores...)); got != sm.Want {
				return fmt.Errorf("%s (%v) sample = %s; want %s", name, sm.Mode, got, sm.Want)
			}
		}
	}
	return nil
}
