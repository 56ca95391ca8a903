// Package freq loads the word-frequency dictionary used to rank cards.
// The source file carries one rank per line; a line may list several word
// forms and all of them map to the same rank.
package freq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/collocards/internal/domain"
)

// Table maps lowercase word forms to 1-based frequency ranks.
type Table struct {
	ranks map[string]int
	lines int
}

// Load reads a frequency dictionary file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("freq: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("freq: read %s: %w", path, err)
	}
	return t, nil
}

// Read builds a table from a frequency dictionary stream. Every whitespace-
// separated form on line N maps to rank N; when a form appears on more than
// one line, the first line wins.
func Read(r io.Reader) (*Table, error) {
	t := &Table{ranks: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		for _, form := range strings.Fields(scanner.Text()) {
			form = strings.ToLower(form)
			if _, seen := t.ranks[form]; !seen {
				t.ranks[form] = line
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	t.lines = line
	return t, nil
}

// Rank returns the frequency rank for a word, matching case-insensitively.
func (t *Table) Rank(word string) (int, bool) {
	rank, ok := t.ranks[domain.NormalizeText(word)]
	return rank, ok
}

// Len returns the number of distinct word forms in the table.
func (t *Table) Len() int { return len(t.ranks) }

// Lines returns the number of source lines read, i.e. the highest rank.
func (t *Table) Lines() int { return t.lines }
