package wordsquare

import (
	"errors"
	"fmt"
)

// ErrEmptyDictionary is returned when the dictionary holds no five-letter
// words, so no seed word can be chosen.
var ErrEmptyDictionary = errors.New("dictionary has no five-letter words")

// ErrPuzzleNotComplete is returned when clue derivation is asked for a grid
// that still has blank cells. That is a caller bug, not a data condition.
var ErrPuzzleNotComplete = errors.New("puzzle grid is not complete")

// ExhaustedError is returned when every attempt failed to complete a
// consistent grid. The whole Generate call may be retried: fresh random
// draws can succeed where these did not.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not complete a grid in %d attempts", e.Attempts)
}
