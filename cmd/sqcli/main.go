package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"crosswarped.com/wordsquare"
	"crosswarped.com/wordsquare/internal/wordlist"
	"crosswarped.com/wordsquare/pkg/dictionary"
)

var (
	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4CAF50"))
	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func main() {
	randomness := flag.Float64("randomness", 0.3, "Blend between greedy (0) and random (1) word choice")
	maxTries := flag.Int("max-tries", wordsquare.DefaultMaxTries, "Maximum number of generation attempts")
	seed := flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	file := flag.String("file", "", "TSV file of word<TAB>clue pairs overriding the built-in list")
	plain := flag.Bool("plain", false, "Print the bare grid without styling")
	solution := flag.Bool("solution", false, "Also print the solution rows")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the generator")

	profile := flag.Bool("profile", false, "Profile the generator")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	if *randomness < 0 || *randomness > 1 {
		fmt.Println("randomness must be in [0, 1]")
		os.Exit(1)
	}

	entries, err := loadEntries(*file)
	if err != nil {
		fmt.Println("Error loading words:", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d words\n", len(entries))

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	rng := newRand(*seed)

	gen := wordsquare.CreateGenerator(dictionary.FromEntries(entries), rng, wordsquare.GeneratorParams{
		Randomness: *randomness,
		MaxTries:   *maxTries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	puzzle, err := gen.Generate(ctx)
	if err != nil {
		var exhausted *wordsquare.ExhaustedError
		if errors.As(err, &exhausted) {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Try running again - generation uses randomness!")
		} else {
			fmt.Println("Error generating puzzle:", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Finished in %d tries\n", puzzle.Attempts)

	if *plain {
		fmt.Println(puzzle.Grid.Repr())
	} else {
		fmt.Println(renderGrid(puzzle.Grid))
	}

	fmt.Println(renderClues("Across", puzzle.Clues.Across))
	fmt.Println(renderClues("Down", puzzle.Clues.Down))

	if *solution {
		fmt.Println(headerStyle.Render("Solution:"))
		for i := 0; i < wordsquare.Size; i++ {
			fmt.Printf("Row %d: %s\n", i+1, puzzle.Grid.Row(i))
		}
	}
}

// newRand builds the generator's random source. A zero seed draws one
// from the clock; any other seed reproduces the same puzzle.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func loadEntries(path string) ([]dictionary.Entry, error) {
	if path == "" {
		return wordlist.Entries()
	}
	return wordlist.ParseFile(path)
}

func renderGrid(grid wordsquare.Grid) string {
	rows := make([]string, wordsquare.Size)
	for y := 0; y < wordsquare.Size; y++ {
		letters := make([]string, wordsquare.Size)
		for x := 0; x < wordsquare.Size; x++ {
			letters[x] = strings.ToUpper(string(grid.Get(x, y)))
		}
		rows[y] = strings.Join(letters, " ")
	}
	return gridStyle.Render(strings.Join(rows, "\n"))
}

func renderClues(title string, clues [wordsquare.Size]string) string {
	lines := make([]string, 0, wordsquare.Size+1)
	lines = append(lines, headerStyle.Render(title+":"))
	for i, clue := range clues {
		lines = append(lines, fmt.Sprintf("%s %s", numberStyle.Render(fmt.Sprintf("%d.", i+1)), clue))
	}
	return strings.Join(lines, "\n")
}
