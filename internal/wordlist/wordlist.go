// Package wordlist supplies the default word/clue list embedded in the
// binary, plus the TSV parsing shared with user-supplied files.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"crosswarped.com/wordsquare/pkg/dictionary"
)

//go:embed words.tsv
var wordsTSV string

// Entries parses the embedded default list.
func Entries() ([]dictionary.Entry, error) {
	return Parse(strings.NewReader(wordsTSV))
}

// ParseFile reads word/clue entries from a TSV file.
func ParseFile(path string) ([]dictionary.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// CheckWord verifies that word is non-empty lowercase ASCII letters.
// Anything else would poison the grid: a space in particular collides
// with the blank-cell sentinel.
func CheckWord(word string) error {
	if word == "" {
		return fmt.Errorf("empty word")
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("word %q contains non-letter %q", word, r)
		}
	}
	return nil
}

// Parse reads tab-separated "word<TAB>clue" lines. Blank lines and lines
// starting with '#' are skipped. Words are lowercased and must be ASCII
// letters only; length is not restricted here, callers filter by length.
func Parse(r io.Reader) ([]dictionary.Entry, error) {
	var entries []dictionary.Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, clue, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: no tab separator in %q", lineNo, line)
		}

		word = strings.ToLower(strings.TrimSpace(word))
		clue = strings.TrimSpace(clue)
		if clue == "" {
			return nil, fmt.Errorf("line %d: empty clue", lineNo)
		}
		if err := CheckWord(word); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		entries = append(entries, dictionary.Entry{Word: word, Clue: clue})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
