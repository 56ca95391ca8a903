// Command cardgen generates Anki collocation cards from the Oxford
// Collocation Dictionary. For each input word it queries an MDX lookup
// server, extracts per-sense verb and preposition collocations, attaches a
// frequency rank and writes a tab-separated Anki import file plus the card
// template/stylesheet assets.
//
// Word sources (exactly one required):
//
//	-w word1,word2    comma-separated word list
//	-f words.txt      word list file, one word per line
//	-anki PATH        difficult words from an Anki collection (close Anki first)
//	-vocab-db         difficult words from the vocabulary service database
//
// Other flags:
//
//	-max N            cap the number of words processed (0 = no cap)
//	-freq FILE        frequency dictionary file override
//	-gen-config FILE  generator YAML config file
//
// Exit codes: 0 = success, 1 = error or zero cards generated.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/collocards/internal/adapter/ankidb"
	"github.com/heartmarshall/collocards/internal/adapter/mdx"
	"github.com/heartmarshall/collocards/internal/adapter/vocabdb"
	"github.com/heartmarshall/collocards/internal/app"
	"github.com/heartmarshall/collocards/internal/app/generator"
	"github.com/heartmarshall/collocards/internal/app/generator/anki"
	"github.com/heartmarshall/collocards/internal/app/generator/freq"
	"github.com/heartmarshall/collocards/internal/config"
)

// Compile-time interface assertion.
var _ generator.MarkupSource = (*mdx.Client)(nil)

func main() {
	wordsFlag := flag.String("w", "", "comma-separated word list")
	fileFlag := flag.String("f", "", "word list file (one word per line)")
	ankiFlag := flag.String("anki", "", "path to an Anki collection.anki2 database")
	vocabDBFlag := flag.Bool("vocab-db", false, "read difficult words from the vocabulary database")
	maxFlag := flag.Int("max", 0, "maximum number of words to process (0 = no limit)")
	freqFlag := flag.String("freq", "", "frequency dictionary file override")
	genConfigFlag := flag.String("gen-config", "", "path to generator YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	genCfg, err := generator.LoadConfig(*genConfigFlag)
	if err != nil {
		logger.Error("load generator config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *maxFlag > 0 {
		genCfg.MaxWords = *maxFlag
	}
	if *freqFlag != "" {
		genCfg.FreqDictPath = *freqFlag
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	words, err := collectWords(ctx, appCfg, genCfg, *wordsFlag, *fileFlag, *ankiFlag, *vocabDBFlag)
	if err != nil {
		logger.Error("collect words", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(words) == 0 {
		logger.Error("no words to process; specify a source with -w, -f, -anki or -vocab-db")
		os.Exit(1)
	}
	logger.Info("word list ready", slog.Int("words", len(words)))

	table, err := freq.Load(genCfg.FreqDictPath)
	if err != nil {
		// Cards are still useful without ranks.
		logger.Warn("frequency dictionary unavailable, ranks will be empty", slog.String("error", err.Error()))
		table = nil
	} else {
		logger.Info("frequency dictionary loaded",
			slog.Int("forms", table.Len()),
			slog.Int("lines", table.Lines()),
		)
	}

	client := mdx.New(appCfg.MDX, logger)
	if err := client.Check(ctx); err != nil {
		logger.Error("mdx server check failed; start the lookup server first", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := generator.NewPipeline(logger, client, table, *genCfg)
	res, err := pipeline.Run(ctx, words)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(res.Cards) == 0 {
		logger.Error("no cards generated",
			slog.Int("words", res.Stats.WordsTotal),
			slog.Int("skipped", res.Stats.Skipped),
		)
		os.Exit(1)
	}

	if err := writeOutputs(genCfg, res); err != nil {
		logger.Error("write outputs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("done",
		slog.Int("cards", res.Stats.CardsTotal),
		slog.Int("words_with_cards", res.Stats.WordsWithCards),
		slog.Int("words_total", res.Stats.WordsTotal),
		slog.Int("skipped", res.Stats.Skipped),
		slog.String("output", genCfg.OutputFile),
	)
}

// collectWords resolves the word list from exactly one of the four sources.
func collectWords(ctx context.Context, appCfg *config.Config, genCfg *generator.Config, wordsArg, fileArg, ankiArg string, useVocabDB bool) ([]string, error) {
	sources := 0
	for _, set := range []bool{wordsArg != "", fileArg != "", ankiArg != "", useVocabDB} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple word sources given; use only one of -w, -f, -anki, -vocab-db")
	}

	switch {
	case wordsArg != "":
		return generator.WordsFromList(strings.Split(wordsArg, ",")), nil

	case fileArg != "":
		return generator.WordsFromFile(fileArg)

	case ankiArg != "":
		return ankidb.DifficultWords(ctx, ankiArg, ankidb.Options{
			EaseThreshold:   genCfg.EaseThreshold,
			LapsesThreshold: genCfg.LapsesThreshold,
			Limit:           genCfg.DifficultLimit,
		})

	case useVocabDB:
		pool, err := vocabdb.NewPool(ctx, appCfg.Database)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return vocabdb.DifficultWords(ctx, pool, vocabdb.Options{
			// The vocab DB stores SM-2 ease (2.5 = default); the Anki
			// threshold config is in permille.
			EaseThreshold:   float64(genCfg.EaseThreshold) / 1000,
			LapsesThreshold: genCfg.LapsesThreshold,
			Limit:           genCfg.DifficultLimit,
		})
	}

	return nil, nil
}

// writeOutputs writes the import file, deck assets and skipped-words log.
func writeOutputs(genCfg *generator.Config, res *generator.Result) error {
	content := anki.BuildImportFile(res.Cards)
	if err := os.WriteFile(genCfg.OutputFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write import file %s: %w", genCfg.OutputFile, err)
	}

	if err := anki.WriteAssets(genCfg.AssetsDir); err != nil {
		return err
	}

	if genCfg.SkippedLogPath != "" && len(res.Skipped) > 0 {
		var b strings.Builder
		for _, s := range res.Skipped {
			fmt.Fprintf(&b, "SKIP %s: %s\n", s.Word, s.Reason)
		}
		if err := os.WriteFile(genCfg.SkippedLogPath, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write skipped log %s: %w", genCfg.SkippedLogPath, err)
		}
	}

	return nil
}
