package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSentimentLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment.yaml")
	content := "positive:\n  - rad\n  - stellar\nnegative:\n  - lame\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lex, err := LoadSentimentLexicon(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(lex.Positive, []string{"rad", "stellar"}) {
		t.Errorf("positive = %v", lex.Positive)
	}
	if !reflect.DeepEqual(lex.Negative, []string{"lame"}) {
		t.Errorf("negative = %v", lex.Negative)
	}
}

func TestLoadSentimentLexiconMissingFile(t *testing.T) {
	if _, err := LoadSentimentLexicon(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadHostConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	content := "values:\n  mode: fast\n  topk: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadHostConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Values["mode"] != "fast" {
		t.Errorf("mode = %v, want fast", cfg.Values["mode"])
	}
	if cfg.Values["topk"] != 3 {
		t.Errorf("topk = %v, want 3", cfg.Values["topk"])
	}
}
