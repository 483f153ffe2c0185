package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestAnalyzeConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mixed.json", `{
		"name": "mixed",
		"seats": 2,
		"deck": ["ace", "ace", {"suit": "spades", "rank": 7}, 42]
	}`)

	summary, err := analyzeConfig(filepath.Join(dir, "mixed.json"))
	if err != nil {
		t.Fatalf("analyzeConfig failed: %v", err)
	}

	if summary.DeckSize != 4 || summary.Strings != 2 || summary.Objects != 1 || summary.Other != 1 {
		t.Errorf("Unexpected shape counts %+v", summary)
	}
	if summary.Distinct != 3 || summary.Duplicates != 1 {
		t.Errorf("Unexpected distinct/duplicate counts %+v", summary)
	}
}

func TestAnalyzeConfig_BadJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bad.json", `nope`)

	if _, err := analyzeConfig(filepath.Join(dir, "bad.json")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.json", `{"name": "empty table", "seats": 2, "deck": []}`)
	writeConfig(t, dir, "b.json", `{"name": "small", "seats": 2, "deck": ["x", "y"]}`)

	var out bytes.Buffer
	if err := analyzeDir(&out, dir); err != nil {
		t.Fatalf("analyzeDir failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"=== Analyzing a.json ===",
		"Empty deck: players seed it with add-cards-to-deck",
		"=== Analyzing b.json ===",
		"Cards per seat if dealt evenly: 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Output missing %q:\n%s", want, text)
		}
	}
}

func TestAnalyzeDir_Empty(t *testing.T) {
	if err := analyzeDir(&bytes.Buffer{}, t.TempDir()); err == nil {
		t.Error("Expected error for directory without configs")
	}
}
