package grammar

import "testing"

const digitDocument = `{
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

func TestLoadValidDocument(t *testing.T) {
	g, err := Load([]byte(digitDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Entry != "E" {
		t.Fatalf("expected entry E, got %s", g.Entry)
	}
	nt, ok := g.EntryNonTerminal()
	if !ok {
		t.Fatal("expected entry non-terminal to resolve")
	}
	if len(nt.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(nt.Alternatives))
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	if _, err := Load([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	bad := `{ "entry": "E", "nonTerminals": {} }` // missing formatVersion, empty nonTerminals
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoadRejectsUnsupportedFormatVersion(t *testing.T) {
	bad := `{
  "formatVersion": "v9.0.0",
  "entry": "E",
  "nonTerminals": { "E": { "alternatives": [[{"terminal":"x"}]] } }
}`
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected unsupported format version error")
	}
}

func TestLoadRejectsLeftRecursion(t *testing.T) {
	bad := `{
  "formatVersion": "v1.0.0",
  "entry": "A",
  "nonTerminals": { "A": { "alternatives": [[{"ref":"A"}, {"terminal":"x"}]] } }
}`
	if _, err := Load([]byte(bad)); err == nil {
		t.Fatal("expected left recursion to be rejected at load time")
	}
}
