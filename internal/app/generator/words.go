package generator

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/collocards/internal/domain"
)

// nonWordRe matches everything a dictionary headword query cannot contain.
// Letters, spaces and hyphens stay; digits and punctuation go.
var nonWordRe = regexp.MustCompile(`[^a-zA-Z\s-]`)

// WordsFromList cleans raw word inputs for dictionary lookup: lowercase,
// strip disallowed characters, collapse whitespace. Single-character residue
// is dropped.
func WordsFromList(raw []string) []string {
	var words []string
	for _, w := range raw {
		w = nonWordRe.ReplaceAllString(strings.ToLower(w), "")
		w = domain.CollapseSpace(w)
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// WordsFromFile reads a word list file (one word per line, blank lines
// ignored) and cleans it like WordsFromList.
func WordsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("word list: open %s: %w", path, err)
	}
	defer f.Close()

	var raw []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			raw = append(raw, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("word list: read %s: %w", path, err)
	}

	return WordsFromList(raw), nil
}

// Dedupe removes repeated words while preserving first-seen order.
func Dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		unique = append(unique, w)
	}
	return unique
}
