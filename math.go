package aoc

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// ParseError reports a puzzle line that could not be parsed. Token is
// the offending part of the line, if known.
type ParseError struct {
	Line  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %q: bad token %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Uint returns the unsigned value of s, which must be only decimal
// digits. The line is only used to annotate the returned *ParseError.
func Uint(line, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Token: s, Err: err}
	}
	return v, nil
}

// Parallel calls f for every element of in, each in its own goroutine.
// The output is in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
