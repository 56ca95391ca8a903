// Package generator orchestrates the collocation card pipeline: it pulls
// dictionary markup per word, extracts per-sense cards, attaches frequency
// ranks and collects the words that produced nothing.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/collocards/internal/app/generator/freq"
	"github.com/heartmarshall/collocards/internal/app/generator/oxford"
	"github.com/heartmarshall/collocards/internal/domain"
)

// verboseRunLimit is the word count up to which every word gets its own log
// line; larger runs log progress every progressEvery words instead.
const (
	verboseRunLimit = 50
	progressEvery   = 200
)

// MarkupSource supplies raw dictionary markup for a headword.
// An empty string with a nil error means the word is not in the dictionary.
type MarkupSource interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// SkippedWord records a word that yielded no cards and why.
type SkippedWord struct {
	Word   string
	Reason string
}

// Stats summarizes one pipeline run.
type Stats struct {
	WordsTotal     int
	WordsWithCards int
	CardsTotal     int
	Skipped        int
}

// Result holds the cards and skip records of one pipeline run.
type Result struct {
	Cards   []domain.SenseCard
	Skipped []SkippedWord
	Stats   Stats
}

// Pipeline runs the batch card generation. Processing is sequential: each
// word's markup is fully turned into cards before the next lookup, and runs
// share no state beyond the accumulated result.
type Pipeline struct {
	log    *slog.Logger
	source MarkupSource
	freq   *freq.Table
	cfg    Config
}

// NewPipeline creates a Pipeline. The frequency table may be nil, in which
// case every card's rank stays empty.
func NewPipeline(logger *slog.Logger, source MarkupSource, table *freq.Table, cfg Config) *Pipeline {
	return &Pipeline{
		log:    logger.With(slog.String("run_id", uuid.NewString())),
		source: source,
		freq:   table,
		cfg:    cfg,
	}
}

// Run processes the given words in order. Words are deduplicated first and
// capped at cfg.MaxWords when that is positive. A word that produces no cards
// is recorded in Result.Skipped, never treated as an error; Run only fails on
// context cancellation.
func (p *Pipeline) Run(ctx context.Context, words []string) (*Result, error) {
	words = Dedupe(words)
	if p.cfg.MaxWords > 0 && len(words) > p.cfg.MaxWords {
		p.log.Warn("word list truncated",
			slog.Int("limit", p.cfg.MaxWords),
			slog.Int("dropped", len(words)-p.cfg.MaxWords),
		)
		words = words[:p.cfg.MaxWords]
	}

	res := &Result{}
	res.Stats.WordsTotal = len(words)
	verbose := len(words) <= verboseRunLimit

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("pipeline interrupted: %w", err)
		}

		cards := p.processWord(ctx, word, res)
		if len(cards) > 0 {
			res.Cards = append(res.Cards, cards...)
			res.Stats.WordsWithCards++
			if verbose {
				p.log.Info("word processed",
					slog.String("word", word),
					slog.Int("cards", len(cards)),
				)
			}
		}

		if !verbose && ((i+1)%progressEvery == 0 || i+1 == len(words)) {
			p.log.Info("progress",
				slog.Int("done", i+1),
				slog.Int("total", len(words)),
				slog.Int("cards", len(res.Cards)),
				slog.Int("skipped", res.Stats.Skipped),
			)
		}
	}

	res.Stats.CardsTotal = len(res.Cards)
	return res, nil
}

// processWord turns one word into zero or more cards, recording a skip when
// nothing comes out.
func (p *Pipeline) processWord(ctx context.Context, word string, res *Result) []domain.SenseCard {
	markup, err := p.source.Lookup(ctx, word)
	if err != nil {
		p.skip(res, word, fmt.Sprintf("lookup failed: %v", err))
		return nil
	}
	if strings.TrimSpace(markup) == "" {
		p.skip(res, word, "no entry found")
		return nil
	}

	doc, err := oxford.ParseDocument(strings.NewReader(markup))
	if err != nil {
		// Markup the tokenizer cannot read counts as a missing entry.
		p.skip(res, word, "unreadable entry markup")
		return nil
	}

	cards := oxford.ExtractCards(doc, word)
	if len(cards) == 0 {
		p.skip(res, word, "no verb/preposition collocations")
		return nil
	}

	if p.freq != nil {
		if rank, ok := p.freq.Rank(word); ok {
			rankStr := strconv.Itoa(rank)
			for i := range cards {
				cards[i].FreqRank = rankStr
			}
		}
	}

	return cards
}

func (p *Pipeline) skip(res *Result, word, reason string) {
	res.Skipped = append(res.Skipped, SkippedWord{Word: word, Reason: reason})
	res.Stats.Skipped++
	p.log.Warn("word skipped",
		slog.String("word", word),
		slog.String("reason", reason),
	)
}
