package freq

import "testing"

func TestCountCharactersIncludesBoundary(t *testing.T) {
	table := CountCharacters("ab ab").Table()

	if got := table.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := table.Count(" "); got != 1 {
		t.Errorf("Count(space) = %d, want 1: the boundary matters for layouts", got)
	}
	if table.Total != 5 {
		t.Errorf("Total = %d, want 5", table.Total)
	}
}

func TestCountNGramsSkipsBoundary(t *testing.T) {
	// Windows: "ab", "b ", " c", "cd" -> only "ab" and "cd" survive
	table := CountNGrams("ab cd", 2).Table()

	if table.Total != 2 {
		t.Errorf("Total = %d, want 2", table.Total)
	}
	if table.Count("ab") != 1 || table.Count("cd") != 1 {
		t.Errorf("expected ab and cd, got %v", table.Entries)
	}
	if table.Count("b ") != 0 || table.Count(" c") != 0 {
		t.Error("boundary-crossing windows must be skipped")
	}
}

func TestCountNGramsKinds(t *testing.T) {
	if got := CountNGrams("abc", 2).Table().Kind; got != "digraph" {
		t.Errorf("kind = %q, want digraph", got)
	}
	if got := CountNGrams("abc", 3).Table().Kind; got != "trigraph" {
		t.Errorf("kind = %q, want trigraph", got)
	}
}

func TestCountNGramsMultibyte(t *testing.T) {
	// Diacritic letters are single runes, not byte pairs
	table := CountNGrams("ëż", 2).Table()
	if got := table.Count("ëż"); got != 1 {
		t.Errorf("Count(ëż) = %d, want 1", got)
	}
}

func TestCountNGramsShortInput(t *testing.T) {
	if got := CountNGrams("ab", 3).Table().Total; got != 0 {
		t.Errorf("Total = %d, want 0 for input shorter than the window", got)
	}
}

func TestCountTrigraphsAcrossWords(t *testing.T) {
	// "szë...": trigraph windows inside words only
	table := CountNGrams("sza sza", 3).Table()
	if got := table.Count("sza"); got != 2 {
		t.Errorf("Count(sza) = %d, want 2", got)
	}
	if table.Total != 2 {
		t.Errorf("Total = %d, want 2", table.Total)
	}
}
