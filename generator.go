package wordsquare

import (
	"context"
	"math/rand/v2"

	"crosswarped.com/wordsquare/pkg/dictionary"
)

// DefaultMaxTries bounds the restart loop when GeneratorParams leaves
// MaxTries unset.
const DefaultMaxTries = 500

// Generator fills a Size x Size grid row by row so that every row and
// every column reads as a dictionary word, then derives the clues.
//
// The search does not backtrack within an attempt: a row with no feasible
// candidate discards the whole attempt and restarts from a blank grid,
// up to MaxTries attempts.
type Generator struct {
	dict  *dictionary.Trie
	words []string

	randomness float64
	maxTries   int

	rand *rand.Rand
}

type GeneratorParams struct {
	// Randomness in [0, 1] blends candidate selection on rows 1..3:
	// 0 always takes the highest-scoring word, 1 always takes a uniformly
	// random feasible word. Pure greedy dead-ends often, pure random burns
	// attempts on bad placements; a blend spends the retry budget best.
	Randomness float64

	// MaxTries caps full restart attempts. Zero means DefaultMaxTries.
	MaxTries int
}

// CreateGenerator builds a generator over dict. The trie is read-only from
// here on and may be shared between generators; each generator owns its
// grid state and random stream.
func CreateGenerator(dict *dictionary.Trie, rng *rand.Rand, params GeneratorParams) *Generator {
	maxTries := params.MaxTries
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}

	var words []string
	for _, e := range dict.Entries() {
		if len(e.Word) == Size {
			words = append(words, e.Word)
		}
	}

	return &Generator{
		dict:       dict,
		words:      words,
		randomness: params.Randomness,
		maxTries:   maxTries,
		rand:       rng,
	}
}

// Puzzle is a completed grid with its clues and the number of attempts the
// generator spent.
type Puzzle struct {
	Grid     Grid
	Clues    ClueSet
	Attempts int
}

// Generate runs the restart search and returns a completed puzzle.
//
// It returns ErrEmptyDictionary when no seed word exists, the context's
// error if ctx is done between attempts, and *ExhaustedError when every
// attempt failed. Partial grids from failed attempts are never exposed.
func (g *Generator) Generate(ctx context.Context) (*Puzzle, error) {
	if len(g.words) == 0 {
		return nil, ErrEmptyDictionary
	}

	for attempt := 1; attempt <= g.maxTries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grid, ok := g.fillGrid()
		if !ok {
			continue
		}

		clues, err := g.DeriveClues(grid)
		if err != nil {
			return nil, err
		}
		return &Puzzle{Grid: grid, Clues: clues, Attempts: attempt}, nil
	}

	return nil, &ExhaustedError{Attempts: g.maxTries}
}

// fillGrid runs one attempt: a random seed word on row 0, then one chosen
// word per remaining row. Reports whether all rows were placed.
func (g *Generator) fillGrid() (Grid, bool) {
	grid := NewBlankGrid()
	grid.placeRow(0, g.words[g.rand.IntN(len(g.words))])

	for row := 1; row < Size; row++ {
		word, ok := g.chooseNextWord(&grid, row)
		if !ok {
			return grid, false
		}
		grid.placeRow(row, word)
	}
	return grid, true
}

// chooseNextWord picks a word for the given row, or reports that no
// candidate is feasible.
//
// The last row is a pure feasibility check, so the pick is uniform among
// feasible words with no score preference. That asymmetry with earlier
// rows is deliberate and observable under a fixed random stream.
func (g *Generator) chooseNextWord(grid *Grid, row int) (string, bool) {
	if row == Size-1 {
		var feasible []string
		for _, word := range g.words {
			if g.evaluateWord(grid, word, row) > 0 {
				feasible = append(feasible, word)
			}
		}
		if len(feasible) == 0 {
			return "", false
		}
		return feasible[g.rand.IntN(len(feasible))], true
	}

	maxScore := 0
	var maxWord string
	var feasible []string

	for _, word := range g.words {
		score := g.evaluateWord(grid, word, row)
		if score > 0 {
			feasible = append(feasible, word)
		}
		if score > maxScore {
			maxScore = score
			maxWord = word
		}
	}

	if maxScore == 0 {
		return "", false
	}
	if g.rand.Float64() >= g.randomness {
		return maxWord, true
	}
	return feasible[g.rand.IntN(len(feasible))], true
}

// evaluateWord scores a candidate for a row by how much downstream
// flexibility it leaves each column.
//
// For each column, the vertical prefix is the column's placed letters plus
// the candidate's letter. On the last row the prefix is a full string and
// contributes 1 only if it is a dictionary word; earlier it contributes
// the number of Size-letter completions. A single dead column makes the
// candidate infeasible: the score is 0 regardless of the other columns.
func (g *Generator) evaluateWord(grid *Grid, word string, row int) int {
	if len(word) != Size {
		return 0
	}

	total := 0
	for x := 0; x < Size; x++ {
		prefix := grid.columnPrefix(x, row) + string(word[x])

		var n int
		if row == Size-1 {
			if g.dict.Contains(prefix) {
				n = 1
			}
		} else {
			n = g.dict.CountCompletions(prefix, Size)
		}

		if n == 0 {
			return 0
		}
		total += n
	}
	return total
}
