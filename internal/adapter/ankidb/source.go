// Package ankidb extracts difficult words from an Anki collection database
// (collection.anki2, SQLite). A word is difficult when its review card sits
// below the ease threshold and above the lapse threshold.
package ankidb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	_ "modernc.org/sqlite"

	"github.com/heartmarshall/collocards/internal/domain"
)

// Options filter the difficult-word query. Zero values fall back to the
// defaults below.
type Options struct {
	EaseThreshold   int // cards with factor below this (Anki permille, 2500 = 250%)
	LapsesThreshold int // cards with more lapses than this
	Limit           int
}

const (
	defaultEaseThreshold   = 2000
	defaultLapsesThreshold = 2
	defaultLimit           = 100
)

// Anki stores all note fields in one column separated by 0x1f; the first
// field holds the word. Card type 2 = review.
const difficultWordsSQL = `
SELECT DISTINCT
    substr(n.flds, 1, instr(n.flds || char(31), char(31)) - 1) AS word,
    c.factor,
    c.lapses
FROM cards c
JOIN notes n ON c.nid = n.id
WHERE c.factor < ?
  AND c.lapses > ?
  AND c.type = 2
ORDER BY c.lapses DESC, c.factor ASC
LIMIT ?`

var (
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	soundRefRe = regexp.MustCompile(`(?i)sound\S*`)
	nonWordRe  = regexp.MustCompile(`[^a-zA-Z\s-]`)
)

// DifficultWords opens the collection read-only and returns the cleaned,
// lowercased words of its hardest review cards, hardest first.
// Anki must not hold the database open while this runs.
func DifficultWords(ctx context.Context, path string, opts Options) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("ankidb: collection %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("ankidb: open collection: %w", err)
	}
	defer db.Close()

	if opts.EaseThreshold <= 0 {
		opts.EaseThreshold = defaultEaseThreshold
	}
	if opts.LapsesThreshold <= 0 {
		opts.LapsesThreshold = defaultLapsesThreshold
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	rows, err := db.QueryContext(ctx, difficultWordsSQL, opts.EaseThreshold, opts.LapsesThreshold, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("ankidb: query difficult words: %w", err)
	}
	defer rows.Close()

	var words []string
	seen := make(map[string]bool)
	for rows.Next() {
		var field string
		var factor, lapses int
		if err := rows.Scan(&field, &factor, &lapses); err != nil {
			return nil, fmt.Errorf("ankidb: scan row: %w", err)
		}
		word := cleanNoteField(field)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ankidb: iterate rows: %w", err)
	}

	return words, nil
}

// cleanNoteField reduces a raw note field to a single lookup word: HTML tags
// and [sound:...] residue removed, non-letters stripped, first token taken.
// Returns "" when nothing usable remains.
func cleanNoteField(field string) string {
	field = htmlTagRe.ReplaceAllString(field, "")
	field = soundRefRe.ReplaceAllString(field, "")
	field = nonWordRe.ReplaceAllString(field, "")
	field = domain.CollapseSpace(field)

	word, _, _ := strings.Cut(field, " ")
	if len(word) < 2 || !isAlpha(word) {
		return ""
	}
	return strings.ToLower(word)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
