package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const digitGrammarJSON = `{
  "formatVersion": "v1.0.0",
  "entry": "E",
  "nonTerminals": {
    "E": {
      "alternatives": [
        [ { "terminal": "0" } ],
        [ { "terminal": "1" }, { "ref": "E" } ]
      ]
    }
  }
}`

func TestDidYouMeanSuggestsClosestName(t *testing.T) {
	got := didYouMean("Entr", []string{"Entry", "Digit", "Start"})
	if got != ` (did you mean "Entry"?)` {
		t.Fatalf("got %q", got)
	}
}

func TestDidYouMeanEmptyCandidates(t *testing.T) {
	if got := didYouMean("whatever", nil); got != "" {
		t.Fatalf("expected no suggestion for an empty candidate list, got %q", got)
	}
}

func TestDidYouMeanNoCloseMatch(t *testing.T) {
	if got := didYouMean("zzzzzzzzzz", []string{"E"}); got != "" {
		t.Fatalf("expected no suggestion when nothing is close, got %q", got)
	}
}

func TestRunRunPrintsRequestedNumberOfSamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digit.grammar.json")
	if err := os.WriteFile(path, []byte(digitGrammarJSON), 0o644); err != nil {
		t.Fatalf("writing grammar: %v", err)
	}

	runCount, runSeed, runEntry = 3, 0, ""
	defer func() { runCount, runSeed, runEntry = 5, 0, "" }()

	cmd := runCmd
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := runRun(cmd, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := bytes.Count(out.Bytes(), []byte("\n"))
	if lines != 3 {
		t.Fatalf("expected 3 lines of samples, got %d:\n%s", lines, out.String())
	}
}

func TestRunRunRejectsUnknownEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digit.grammar.json")
	if err := os.WriteFile(path, []byte(digitGrammarJSON), 0o644); err != nil {
		t.Fatalf("writing grammar: %v", err)
	}

	runCount, runSeed = 1, 0
	runEntry = "e"
	defer func() { runEntry = "" }()

	cmd := runCmd
	if err := cmd.Flags().Set("entry", "e"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer func() {
		flag := cmd.Flags().Lookup("entry")
		flag.Changed = false
		_ = flag.Value.Set(flag.DefValue)
	}()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := runRun(cmd, []string{path})
	if err == nil {
		t.Fatal("expected an error for an unresolvable --entry")
	}
}
