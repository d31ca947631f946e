package wordsquare

// NoClueFound is the placeholder clue for a grid word that is missing from
// the dictionary. Rows are placed straight from dictionary words, so it
// only ever surfaces for a column whose emergent word failed verification.
const NoClueFound = "No clue found"

// ClueSet holds one clue per row (across) and one per column (down).
type ClueSet struct {
	Across [Size]string
	Down   [Size]string
}

// DeriveClues looks up every row and column of a complete grid and
// returns their clues. Unknown words get the NoClueFound placeholder.
//
// Columns are the real consistency check here: they are read out of the
// grid, never placed, so this is where the search's column scoring is
// actually verified.
func (g *Generator) DeriveClues(grid Grid) (ClueSet, error) {
	if !grid.Complete() {
		return ClueSet{}, ErrPuzzleNotComplete
	}

	var clues ClueSet
	for i := 0; i < Size; i++ {
		clues.Across[i] = g.clueFor(grid.Row(i))
		clues.Down[i] = g.clueFor(grid.Column(i))
	}
	return clues, nil
}

func (g *Generator) clueFor(word string) string {
	for _, e := range g.dict.LookupPrefix(word) {
		if len(e.Word) == Size {
			return e.Clue
		}
	}
	return NoClueFound
}
