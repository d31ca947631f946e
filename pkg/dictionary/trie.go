// Package dictionary provides a prefix-indexed word/clue dictionary.
//
// Every prefix node accumulates the full (word, clue) entries passing
// through it, not just the words ending there. Completion counting at
// partial prefixes is the primitive the grid search scores with, so this
// accumulation must not be "optimized" into terminal-only storage.
package dictionary

// Entry is a single word/clue association.
type Entry struct {
	Word string
	Clue string
}

type node struct {
	children map[byte]*node
	terminal bool
	entries  []Entry
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie indexes entries by shared word prefixes.
//
// Build it once with Insert (or FromEntries) before handing it to a
// generator; all query methods are read-only and safe to share across
// concurrent readers afterwards.
type Trie struct {
	root *node
	all  []Entry
}

func New() *Trie {
	return &Trie{root: newNode()}
}

// FromEntries builds a trie from entries in order.
func FromEntries(entries []Entry) *Trie {
	t := New()
	for _, e := range entries {
		t.Insert(e.Word, e.Clue)
	}
	return t
}

// Insert records the association at every prefix node along word's path
// and marks the final node terminal. Words of any length are accepted;
// callers that only want fixed-length words filter on lookup. Duplicate
// words with distinct clues are kept as separate entries in insertion
// order.
func (t *Trie) Insert(word, clue string) {
	entry := Entry{Word: word, Clue: clue}
	t.all = append(t.all, entry)

	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
		n.entries = append(n.entries, entry)
	}
	n.terminal = true
}

// walk returns the node reached by prefix, or nil if no inserted word
// starts with it.
func (t *Trie) walk(prefix string) *node {
	n := t.root
	for i := 0; i < len(prefix); i++ {
		child, ok := n.children[prefix[i]]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// LookupPrefix returns every entry whose word has the given prefix, in
// insertion order. Unknown prefixes yield an empty result, not an error.
// The empty prefix yields nothing: the root node holds no entries.
func (t *Trie) LookupPrefix(prefix string) []Entry {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	return n.entries
}

// CountCompletions returns how many entries under prefix have a word of
// exactly the given length.
func (t *Trie) CountCompletions(prefix string, length int) int {
	n := t.walk(prefix)
	if n == nil {
		return 0
	}
	count := 0
	for _, e := range n.entries {
		if len(e.Word) == length {
			count++
		}
	}
	return count
}

// Contains reports whether word was inserted as a complete word.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// Clue returns the first clue inserted for an exact word.
func (t *Trie) Clue(word string) (string, bool) {
	n := t.walk(word)
	if n == nil || !n.terminal {
		return "", false
	}
	for _, e := range n.entries {
		if e.Word == word {
			return e.Clue, true
		}
	}
	return "", false
}

// Entries returns every inserted entry in insertion order.
func (t *Trie) Entries() []Entry {
	return t.all
}
