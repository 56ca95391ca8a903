// Package vocabdb extracts difficult words from the vocabulary service's
// PostgreSQL database: entries whose SRS cards have drifted to a low ease
// factor with repeated lapses.
package vocabdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options filter the difficult-word query. Zero values fall back to the
// defaults below.
type Options struct {
	EaseThreshold   float64 // cards with ease_factor below this (SM-2 scale, 2.5 default ease)
	LapsesThreshold int     // cards with more lapses than this
	Limit           int
}

const (
	defaultEaseThreshold   = 2.0
	defaultLapsesThreshold = 2
	defaultLimit           = 100
)

func (o Options) withDefaults() Options {
	if o.EaseThreshold <= 0 {
		o.EaseThreshold = defaultEaseThreshold
	}
	if o.LapsesThreshold <= 0 {
		o.LapsesThreshold = defaultLapsesThreshold
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	return o
}

const difficultWordsSQL = `
SELECT e.text_normalized
FROM cards c
JOIN entries e ON c.entry_id = e.id
WHERE e.deleted_at IS NULL
  AND c.ease_factor < $1
  AND c.lapses > $2
ORDER BY c.lapses DESC, c.ease_factor ASC
LIMIT $3`

// DifficultWords returns the normalized texts of the hardest cards,
// hardest first.
func DifficultWords(ctx context.Context, pool *pgxpool.Pool, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	rows, err := pool.Query(ctx, difficultWordsSQL, opts.EaseThreshold, opts.LapsesThreshold, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("vocabdb: query difficult words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("vocabdb: scan row: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vocabdb: iterate rows: %w", err)
	}

	return words, nil
}
