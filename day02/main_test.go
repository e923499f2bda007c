package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.CheckSamples(source, solver))
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line string
		want Game
	}{
		{
			line: "Game 1: 3 blue, 4 red",
			want: Game{ID: 1, Red: 4, Blue: 3},
		},
		{
			line: "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
			want: Game{ID: 3, Red: 20, Green: 13, Blue: 6},
		},
		{
			line: "Game 42: 2 purple, 1 red; 7 purple",
			want: Game{ID: 42, Red: 1},
		},
	}
	for _, tt := range tests {
		got, err := parseGame(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseGameErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"Game x: 3 blue", nil},
		{"Game 1: three blue", nil},
		{"Game 1: 3 blue; ", nil},
		{"Game 1 3 blue", errNoSeparator},
		{"Game: 3 blue", errNoID},
		{"Game 1: 3", errNoColor},
		{"Game 1: 3\t blue", nil},
		{"Game  1: 3 blue", nil},
		{"", errNoSeparator},
	}
	for _, tt := range tests {
		_, err := parseGame(tt.line)
		var pe *aoc.ParseError
		require.ErrorAs(t, err, &pe, tt.line)
		assert.Equal(t, tt.line, pe.Line)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.line)
		}
	}
}

func TestLegal(t *testing.T) {
	limit := Game{Red: 12, Green: 13, Blue: 14}
	assert.True(t, limit.Legal())
	for _, g := range []Game{
		{Red: 13, Green: 13, Blue: 14},
		{Red: 12, Green: 14, Blue: 14},
		{Red: 12, Green: 13, Blue: 15},
	} {
		assert.False(t, g.Legal(), "%+v", g)
	}
}

func TestPower(t *testing.T) {
	assert.EqualValues(t, 48, Game{Red: 4, Green: 2, Blue: 6}.Power())
	assert.EqualValues(t, 0, Game{Red: 4, Blue: 3}.Power())
}

func TestScore(t *testing.T) {
	line := "Game 1: 3 blue, 4 red"
	v, err := newScorer(aoc.Simple)(line)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	v, err = newScorer(aoc.Extended)(line)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	v, err = newScorer(aoc.Simple)("Game 3: 8 green, 6 blue, 20 red")
	require.NoError(t, err)
	assert.EqualValues(t, 0, v, "illegal game scores 0")

	v, err = newScorer(aoc.Extended)("Game 3: 8 green, 6 blue, 20 red")
	require.NoError(t, err)
	assert.EqualValues(t, 960, v, "power ignores legality")
}

func TestRun(t *testing.T) {
	for mode, want := range map[aoc.Mode]uint64{aoc.Simple: 8, aoc.Extended: 2286} {
		var out strings.Builder
		got, err := aoc.Run(aoc.Config{Path: "testdata/sample.txt", Mode: mode}, &out, solver)
		require.NoError(t, err)
		assert.Equal(t, want, got, "mode %v", mode)
		assert.Equal(t, "In file testdata/sample.txt\n", out.String(), "no per-line output")
	}
}

func TestRunAbortsOnBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Game 1: 3 blue\nGame 2: lots red\nGame 3: 1 red\n"), 0644))
	_, err := aoc.Run(aoc.Config{Path: path}, io.Discard, solver)
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "lots", pe.Token)
	assert.False(t, errors.Is(err, errNoColor))
}
