package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/cognicore/texthub/pkg/texthub"
	"github.com/cognicore/texthub/pkg/texthub/config"
	"github.com/cognicore/texthub/pkg/texthub/htmltext"
	"github.com/cognicore/texthub/pkg/texthub/journal"
	"github.com/cognicore/texthub/pkg/texthub/journal/sqlite"
	"github.com/cognicore/texthub/pkg/texthub/sentiment"
	"github.com/cognicore/texthub/pkg/texthub/tag"
	"github.com/cognicore/texthub/pkg/texthub/tokenstats"
)

func main() {
	var (
		name        = flag.String("name", "texthub", "Hub name")
		text        = flag.String("text", "", "Input text (required)")
		unitName    = flag.String("unit", "sentiment", "Unit to dispatch to (tokens, sentiment, htmltext)")
		statePath   = flag.String("state", "", "Save hub state to this file after dispatch (optional)")
		loadPath    = flag.String("load", "", "Restore hub config from this file before dispatch (optional)")
		dbPath      = flag.String("db", "", "SQLite dispatch journal (optional)")
		tagLexPath  = flag.String("tag-lexicon", "", "Tag lexicon YAML (optional, built-in default otherwise)")
		sentLexPath = flag.String("sentiment-lexicon", "", "Sentiment lexicon YAML (optional)")
		recentRuns  = flag.Int("recent", 0, "Print the N most recent journal runs after dispatch")
	)
	flag.Parse()

	if *text == "" {
		log.Fatal("--text required")
	}

	ctx := context.Background()

	hub, cleanup, err := buildHub(ctx, *name, *dbPath, *tagLexPath, *sentLexPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *loadPath != "" {
		if err := hub.LoadConfig(*loadPath); err != nil {
			log.Fatal(err)
		}
	}

	res, err := hub.Dispatch(ctx, *unitName, *text)
	if err != nil {
		log.Fatal(err)
	}
	printResult(*unitName, res)

	if *statePath != "" {
		if err := hub.SaveConfig(*statePath); err != nil {
			log.Fatal(err)
		}
		fmt.Println("State saved to", *statePath)
	}

	if *recentRuns > 0 {
		if err := printRecent(ctx, hub, *recentRuns); err != nil {
			log.Fatal(err)
		}
	}
}

func buildHub(ctx context.Context, name, dbPath, tagLexPath, sentLexPath string) (*texthub.Hub, func(), error) {
	cleanup := func() {}

	var j journal.Journal
	if dbPath != "" {
		var err error
		j, err = sqlite.Open(ctx, dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		cleanup = func() { j.Close() }
	}

	tagger := tag.Default()
	if tagLexPath != "" {
		var err error
		tagger, err = tag.LoadLexicon(tagLexPath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	sent := sentiment.New()
	if sentLexPath != "" {
		lex, err := config.LoadSentimentLexicon(sentLexPath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		sent = sentiment.NewWithLexicon(lex.Positive, lex.Negative)
	}

	hub := texthub.New(texthub.Options{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Journal:   j,
	})
	hub.Register("tokens", tokenstats.New(tagger))
	hub.Register("sentiment", sent)
	hub.Register("htmltext", htmltext.New())

	return hub, cleanup, nil
}

func printResult(unit string, res texthub.Result) {
	fmt.Printf("[%s]\n", unit)
	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, res[k])
	}
}

func printRecent(ctx context.Context, hub *texthub.Hub, n int) error {
	j := hub.Journal()
	if j == nil {
		return nil
	}
	runs, err := j.Recent(ctx, n)
	if err != nil {
		return fmt.Errorf("journal recent: %w", err)
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-10s  %s\n", r.CreatedAt.Format(time.RFC3339), r.Unit, r.Input)
	}
	return nil
}
