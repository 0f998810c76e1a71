package lexmodel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBlacklistKeep(t *testing.T) {
	b := DefaultBlacklist()

	tests := []struct {
		word string
		want bool
	}{
		{"kaszëbë", true},  // ordinary word
		{"http", false},    // web markup
		{"the", false},     // english
		{"und", false},     // foreign
		{"isbn", false},    // codes
		{"w", true},        // whitelisted despite being one letter
		{"ò", true},        // whitelisted diacritic letter
	}

	for _, tt := range tests {
		if got := b.Keep(tt.word); got != tt.want {
			t.Errorf("Keep(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWhitelistPrecedence(t *testing.T) {
	b := &Blacklist{
		Categories: map[string][]string{"noise": {"je"}},
		Whitelist:  []string{"je"},
	}
	b.buildIndex()

	if !b.Keep("je") {
		t.Error("whitelist must win over blacklist categories")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	b := DefaultBlacklist()

	kept, stats := b.Filter([]string{"jeden", "http", "dwa", "the", "trzë"})

	want := []string{"jeden", "dwa", "trzë"}
	if len(kept) != len(want) {
		t.Fatalf("kept %v, want %v", kept, want)
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("kept[%d] = %q, want %q", i, kept[i], want[i])
		}
	}

	if stats.RemovedWords != 2 {
		t.Errorf("RemovedWords = %d, want 2", stats.RemovedWords)
	}
	if stats.PercentRemoved != 40 {
		t.Errorf("PercentRemoved = %f, want 40", stats.PercentRemoved)
	}
}

func TestLoadBlacklistYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blacklist.yaml")
	content := `categories:
  custom:
    - szëmel
whitelist:
  - w
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	b, err := LoadBlacklist(path)
	if err != nil {
		t.Fatalf("LoadBlacklist: %v", err)
	}
	if b.Keep("szëmel") {
		t.Error("custom category not applied")
	}
	if !b.Keep("w") {
		t.Error("whitelist not applied")
	}
}

func TestLoadBlacklistEmptyPathUsesDefault(t *testing.T) {
	b, err := LoadBlacklist("")
	if err != nil {
		t.Fatalf("LoadBlacklist: %v", err)
	}
	if b.Keep("http") {
		t.Error("default blacklist should reject web markup")
	}
}
