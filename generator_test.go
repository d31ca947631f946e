package wordsquare

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"crosswarped.com/wordsquare/internal/wordlist"
	"crosswarped.com/wordsquare/pkg/dictionary"
)

// satorTrie returns the classic sator square words. The square is
// symmetric, so a successful grid's columns are drawn from the same set.
func satorTrie() *dictionary.Trie {
	return dictionary.FromEntries([]dictionary.Entry{
		{Word: "sator", Clue: "sower"},
		{Word: "arepo", Clue: "proper name"},
		{Word: "tenet", Clue: "principle"},
		{Word: "opera", Clue: "work"},
		{Word: "rotas", Clue: "wheels"},
	})
}

// scoredTrie has one obvious seed row ("aaaaa") and second-row candidates
// with distinct, hand-computable scores.
func scoredTrie() *dictionary.Trie {
	words := []string{
		"aaaaa",
		"bbbbb", // after "aaaaa": 5 columns of "ab", score 15
		"bbbbc", // 4x "ab" + 1x "ac", score 13
		"ccccc", // 5 columns of "ac", score 5
		"abbbb",
		"ababa",
		"abcde", // column "ad" has no completions: infeasible
		"acccc",
	}
	trie := dictionary.New()
	for _, w := range words {
		trie.Insert(w, "clue for "+w)
	}
	return trie
}

func TestGenerate_GridValidity(t *testing.T) {
	trie := satorTrie()
	// Fixed seed for reproducibility.
	rng := rand.New(rand.NewPCG(42, 1024))

	gen := CreateGenerator(trie, rng, GeneratorParams{Randomness: 0.3})

	puzzle, err := gen.Generate(t.Context())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !puzzle.Grid.Complete() {
		t.Fatalf("grid not complete:\n%s", puzzle.Grid.Repr())
	}
	for i := range Size {
		if row := puzzle.Grid.Row(i); !trie.Contains(row) {
			t.Errorf("row %d %q is not a dictionary word", i, row)
		}
		if col := puzzle.Grid.Column(i); !trie.Contains(col) {
			t.Errorf("column %d %q is not a dictionary word", i, col)
		}
	}

	if puzzle.Attempts < 1 || puzzle.Attempts > DefaultMaxTries {
		t.Errorf("attempts = %d, want within [1, %d]", puzzle.Attempts, DefaultMaxTries)
	}
	for i := range Size {
		if puzzle.Clues.Across[i] == "" || puzzle.Clues.Down[i] == "" {
			t.Errorf("clue %d missing: across=%q down=%q", i, puzzle.Clues.Across[i], puzzle.Clues.Down[i])
		}
	}
}

func TestGenerate_DeterministicUnderFixedSeed(t *testing.T) {
	generate := func() *Puzzle {
		rng := rand.New(rand.NewPCG(7, 99))
		gen := CreateGenerator(satorTrie(), rng, GeneratorParams{Randomness: 0.5})
		puzzle, err := gen.Generate(t.Context())
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return puzzle
	}

	first := generate()
	second := generate()

	if first.Grid.Repr() != second.Grid.Repr() {
		t.Errorf("grids differ under the same seed:\n%s\n--\n%s", first.Grid.Repr(), second.Grid.Repr())
	}
	if first.Attempts != second.Attempts {
		t.Errorf("attempts differ under the same seed: %d vs %d", first.Attempts, second.Attempts)
	}
}

func TestChooseNextWord_GreedyMatchesBruteForce(t *testing.T) {
	trie := scoredTrie()
	rng := rand.New(rand.NewPCG(1, 1))
	gen := CreateGenerator(trie, rng, GeneratorParams{Randomness: 0})

	grid := NewBlankGrid()
	grid.placeRow(0, "aaaaa")

	// Brute-force maximum with the same first-wins tie-break.
	bestScore := 0
	var bestWord string
	for _, word := range gen.words {
		if score := gen.evaluateWord(&grid, word, 1); score > bestScore {
			bestScore = score
			bestWord = word
		}
	}
	if bestWord != "bbbbb" || bestScore != 15 {
		t.Fatalf("brute force found %q (score %d), want %q (score 15)", bestWord, bestScore, "bbbbb")
	}

	// With zero randomness the choice must be the brute-force maximum,
	// regardless of the random stream.
	for range 20 {
		word, ok := gen.chooseNextWord(&grid, 1)
		if !ok {
			t.Fatal("chooseNextWord found no candidate")
		}
		if word != bestWord {
			t.Fatalf("chooseNextWord = %q, want greedy maximum %q", word, bestWord)
		}
	}
}

func TestEvaluateWord_Scores(t *testing.T) {
	trie := scoredTrie()
	gen := CreateGenerator(trie, rand.New(rand.NewPCG(1, 1)), GeneratorParams{})

	grid := NewBlankGrid()
	grid.placeRow(0, "aaaaa")

	tests := []struct {
		name string
		word string
		row  int
		want int
	}{
		{"all columns open", "bbbbb", 1, 15},
		{"mixed columns", "bbbbc", 1, 13},
		{"narrow columns", "ccccc", 1, 5},
		{"one dead column zeroes the rest", "abcde", 1, 0},
		{"wrong length", "abc", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.evaluateWord(&grid, tt.word, tt.row); got != tt.want {
				t.Errorf("evaluateWord(%q, row %d) = %d, want %d", tt.word, tt.row, got, tt.want)
			}
		})
	}
}

func TestEvaluateWord_LastRowIsMembershipCheck(t *testing.T) {
	trie := satorTrie()
	gen := CreateGenerator(trie, rand.New(rand.NewPCG(1, 1)), GeneratorParams{})

	grid := NewBlankGrid()
	for row, word := range []string{"sator", "arepo", "tenet", "opera"} {
		grid.placeRow(row, word)
	}

	// Each completed column is a dictionary word: 1 per column.
	if got := gen.evaluateWord(&grid, "rotas", Size-1); got != Size {
		t.Errorf("evaluateWord(%q, last row) = %d, want %d", "rotas", got, Size)
	}
	// "sator" completes column 0 to "satos", which is not a word.
	if got := gen.evaluateWord(&grid, "sator", Size-1); got != 0 {
		t.Errorf("evaluateWord(%q, last row) = %d, want 0", "sator", got)
	}
}

func TestGenerate_Exhausted(t *testing.T) {
	// A single word whose self-crossings are never words: every attempt
	// fails at row 1, so the whole retry budget is spent.
	trie := dictionary.New()
	trie.Insert("abcde", "the only word")

	const maxTries = 7
	gen := CreateGenerator(trie, rand.New(rand.NewPCG(3, 3)), GeneratorParams{MaxTries: maxTries})

	_, err := gen.Generate(t.Context())

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Generate error = %v, want *ExhaustedError", err)
	}
	if exhausted.Attempts != maxTries {
		t.Errorf("Attempts = %d, want %d", exhausted.Attempts, maxTries)
	}
}

func TestGenerate_EmptyDictionary(t *testing.T) {
	tests := []struct {
		name string
		trie *dictionary.Trie
	}{
		{"no entries at all", dictionary.New()},
		{"no five-letter entries", dictionary.FromEntries([]dictionary.Entry{
			{Word: "cat", Clue: "pet"},
			{Word: "crossword", Clue: "this puzzle"},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := CreateGenerator(tt.trie, rand.New(rand.NewPCG(1, 1)), GeneratorParams{})
			if _, err := gen.Generate(t.Context()); !errors.Is(err, ErrEmptyDictionary) {
				t.Errorf("Generate error = %v, want ErrEmptyDictionary", err)
			}
		})
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	gen := CreateGenerator(satorTrie(), rand.New(rand.NewPCG(1, 1)), GeneratorParams{})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := gen.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Generate error = %v, want context.Canceled", err)
	}
}

func BenchmarkGenerate(b *testing.B) {
	entries, err := wordlist.Entries()
	if err != nil {
		b.Fatalf("wordlist.Entries: %v", err)
	}
	trie := dictionary.FromEntries(entries)
	b.ReportAllocs()

	rng := rand.New(rand.NewPCG(42, 1024))
	for b.Loop() {
		gen := CreateGenerator(trie, rng, GeneratorParams{Randomness: 0.3, MaxTries: 50})
		if _, err := gen.Generate(b.Context()); err != nil {
			var exhausted *ExhaustedError
			if !errors.As(err, &exhausted) {
				b.Fatalf("Generate: %v", err)
			}
		}
	}
}
