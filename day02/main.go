// Command day02 solves Advent of Code 2023 day 2 (Cube Conundrum).
//
// Without PART2 it sums the ids of the games that were possible with
// 12 red, 13 green and 14 blue cubes. With PART2 set it sums the power
// of every game.
package main

import (
	_ "embed"
	"errors"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	aoc.Main(solver)
}

//go:embed main.go
var source []byte

var solver = aoc.Solver{Scorer: newScorer}

// Bag contents for part 1.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

type color int

const (
	red color = iota
	green
	blue
)

var colors = map[string]color{
	"red":   red,
	"green": green,
	"blue":  blue,
}

var (
	errNoSeparator = errors.New(`missing ": " after game label`)
	errNoID        = errors.New("missing game id")
	errNoColor     = errors.New("missing cube color")
)

// Game is the most cubes of each color seen in any one draw.
type Game struct {
	ID               uint64
	Red, Green, Blue uint64
}

func (g *Game) see(c color, n uint64) {
	switch c {
	case red:
		g.Red = max(g.Red, n)
	case green:
		g.Green = max(g.Green, n)
	case blue:
		g.Blue = max(g.Blue, n)
	}
}

// Legal reports whether g could have been played with the part 1 bag.
func (g Game) Legal() bool {
	return g.Red <= maxRed && g.Green <= maxGreen && g.Blue <= maxBlue
}

// Power is the product of the minimum cube counts g needs.
func (g Game) Power() uint64 {
	return g.Red * g.Green * g.Blue
}

// parseGame parses a line such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Colors other than red, green and blue are skipped.
func parseGame(line string) (Game, error) {
	label, draws, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, &aoc.ParseError{Line: line, Err: errNoSeparator}
	}
	f := strings.Split(label, " ")
	if len(f) < 2 {
		return Game{}, &aoc.ParseError{Line: line, Token: label, Err: errNoID}
	}
	id, err := aoc.Uint(line, f[1])
	if err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(draws, "; ") {
		for _, cubes := range strings.Split(draw, ", ") {
			qc := strings.Split(cubes, " ")
			n, err := aoc.Uint(line, qc[0])
			if err != nil {
				return Game{}, err
			}
			if len(qc) < 2 {
				return Game{}, &aoc.ParseError{Line: line, Token: cubes, Err: errNoColor}
			}
			if c, ok := colors[qc[1]]; ok {
				g.see(c, n)
			}
		}
	}
	return g, nil
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 8 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
// want=2286 mode=extended
func newScorer(mode aoc.Mode) aoc.LineScorer {
	return func(line string) (uint64, error) {
		g, err := parseGame(line)
		if err != nil {
			return 0, err
		}
		if mode == aoc.Extended {
			return g.Power(), nil
		}
		if g.Legal() {
			return g.ID, nil
		}
		return 0, nil
	}
}
