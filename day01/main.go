// Command day01 solves Advent of Code 2023 day 1 (Trebuchet?!).
//
// Each line's calibration value is its first digit followed by its last
// digit. With PART2 set, spelled-out digits ("one" to "nine") count too.
//
//	day01 input.txt
//	PART2= day01 input.txt
package main

import (
	_ "embed"
	"slices"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	aoc.Main(solver)
}

//go:embed main.go
var source []byte

var solver = aoc.Solver{
	Scorer: newScorer,
	Echo:   true,
}

var (
	numerals = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	words    = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
)

// patterns returns what counts as a digit in mode. Pattern i is worth
// i%9 + 1.
func patterns(mode aoc.Mode) []string {
	if mode == aoc.Extended {
		return append(slices.Clip(numerals), words...)
	}
	return numerals
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
/*
want=281 mode=extended

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func newScorer(mode aoc.Mode) aoc.LineScorer {
	m := aoc.CompileMatcher(patterns(mode))
	return func(line string) (uint64, error) {
		return calibration(m, line), nil
	}
}

// calibration returns the first and last digits m finds in line as a
// two digit number. A line without digits is worth 11.
func calibration(m *aoc.Matcher, line string) uint64 {
	first, last := -1, -1
	m.ForOverlapping(line, func(mt aoc.Match) bool {
		if first == -1 {
			first = mt.Pattern
		}
		last = mt.Pattern
		return true
	})
	if first == -1 {
		first = 0
	}
	if last == -1 {
		last = first
	}
	return digit(first)*10 + digit(last)
}

func digit(pattern int) uint64 {
	return uint64(pattern%9 + 1)
}
