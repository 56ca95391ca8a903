package generator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/collocards/internal/app/generator/freq"
)

const accordMarkup = `<entry>
<h>accord</h>
<head><p-blk><p>verb</p></p-blk><def>to agree with sth <chn>符合</chn></def></head>
<sl-g-blk sl="prep">
  <sl-g-head>PREPOSITION</sl-g-head>
  <sl-g><sb-g>
    <cl>accord with <chn>符合</chn></cl>
    <x-blk><x>It accords with the facts. <chn>这与事实相符。</chn></x></x-blk>
  </sb-g></sl-g>
</sl-g-blk>
</entry>`

const idiomOnlyMarkup = `<entry>
<h>ground</h>
<sl-g-blk sl="idiom"><sl-g-head>IDIOMS</sl-g-head>
  <sl-g><sb-g><cl>break new ground</cl></sb-g></sl-g>
</sl-g-blk>
</entry>`

// stubSource serves canned markup and records lookups.
type stubSource struct {
	entries map[string]string
	errs    map[string]error
	calls   []string
}

func (s *stubSource) Lookup(_ context.Context, word string) (string, error) {
	s.calls = append(s.calls, word)
	if err := s.errs[word]; err != nil {
		return "", err
	}
	return s.entries[word], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipelineRun(t *testing.T) {
	source := &stubSource{
		entries: map[string]string{
			"accord": accordMarkup,
			"ground": idiomOnlyMarkup,
		},
		errs: map[string]error{
			"broken": errors.New("connection refused"),
		},
	}
	table, err := freq.Read(strings.NewReader("the\naccord accords\n"))
	require.NoError(t, err)

	p := NewPipeline(testLogger(), source, table, Config{})
	res, err := p.Run(context.Background(), []string{"accord", "missing", "ground", "broken", "accord"})
	require.NoError(t, err)

	// "accord" is looked up once despite appearing twice.
	assert.Equal(t, []string{"accord", "missing", "ground", "broken"}, source.calls)

	require.Len(t, res.Cards, 1)
	card := res.Cards[0]
	assert.Equal(t, "accord", card.Word)
	assert.Equal(t, "2", card.FreqRank, "rank comes from the frequency table line number")

	require.Len(t, res.Skipped, 3)
	reasons := map[string]string{}
	for _, s := range res.Skipped {
		reasons[s.Word] = s.Reason
	}
	assert.Equal(t, "no entry found", reasons["missing"])
	assert.Equal(t, "no verb/preposition collocations", reasons["ground"])
	assert.Contains(t, reasons["broken"], "lookup failed")

	assert.Equal(t, Stats{WordsTotal: 4, WordsWithCards: 1, CardsTotal: 1, Skipped: 3}, res.Stats)
}

func TestPipelineRun_NilFreqTable(t *testing.T) {
	source := &stubSource{entries: map[string]string{"accord": accordMarkup}}

	p := NewPipeline(testLogger(), source, nil, Config{})
	res, err := p.Run(context.Background(), []string{"accord"})
	require.NoError(t, err)

	require.Len(t, res.Cards, 1)
	assert.Empty(t, res.Cards[0].FreqRank)
}

func TestPipelineRun_MaxWordsCap(t *testing.T) {
	source := &stubSource{entries: map[string]string{}}

	p := NewPipeline(testLogger(), source, nil, Config{MaxWords: 2})
	res, err := p.Run(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, source.calls)
	assert.Equal(t, 2, res.Stats.WordsTotal)
}

func TestPipelineRun_CancelledContext(t *testing.T) {
	source := &stubSource{entries: map[string]string{"accord": accordMarkup}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(testLogger(), source, nil, Config{})
	_, err := p.Run(ctx, []string{"accord"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, source.calls)
}
