package predict

import (
	"testing"

	"korpus/internal/lexmodel"
)

func testModel(t *testing.T) *lexmodel.Model {
	t.Helper()
	b := &lexmodel.Blacklist{Categories: map[string][]string{}}
	builder := lexmodel.NewBuilder(b, 1, 0)

	tokens := []string{
		"kaszëbë", "to", "krôj",
		"kaszëbsczi", "jãzëk", "to", "skôrb",
		"kaszëbë", "to", "dodóm",
		"kaszëbë", "są", "snôżé",
	}
	m, err := builder.Build(tokens)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestComplete(t *testing.T) {
	p := New(testModel(t))

	got := p.Complete("kasz", 5)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(got), got)
	}
	// kaszëbë (3) outranks kaszëbsczi (1)
	if got[0].Word != "kaszëbë" || got[1].Word != "kaszëbsczi" {
		t.Errorf("order wrong: %+v", got)
	}
	if got[0].Count != 3 {
		t.Errorf("Count = %d, want 3", got[0].Count)
	}
}

func TestCompleteLimit(t *testing.T) {
	p := New(testModel(t))

	if got := p.Complete("kasz", 1); len(got) != 1 {
		t.Errorf("limit ignored: %+v", got)
	}
}

func TestCompleteCaseFolded(t *testing.T) {
	p := New(testModel(t))

	if got := p.Complete("KASZ", 5); len(got) != 2 {
		t.Errorf("uppercase prefix should match: %+v", got)
	}
}

func TestCompleteNoMatch(t *testing.T) {
	p := New(testModel(t))

	if got := p.Complete("xyz", 5); got != nil {
		t.Errorf("want nil, got %+v", got)
	}
	if got := p.Complete("", 5); got != nil {
		t.Errorf("empty prefix should return nil, got %+v", got)
	}
}

func TestCompleteCached(t *testing.T) {
	p := New(testModel(t))

	first := p.Complete("kasz", 5)
	second := p.Complete("kasz", 5)
	if len(first) != len(second) || first[0].Word != second[0].Word {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestNextWord(t *testing.T) {
	p := New(testModel(t))

	got := p.NextWord("kaszëbë", 5)
	if len(got) == 0 {
		t.Fatal("no suggestions for a word with known followers")
	}
	// "to" follows kaszëbë twice, "są" once
	if got[0].Word != "to" {
		t.Errorf("top suggestion = %q, want \"to\"", got[0].Word)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Probability > got[i-1].Probability {
			t.Errorf("suggestions not sorted by probability: %+v", got)
		}
	}
}

func TestNextWordUnknown(t *testing.T) {
	p := New(testModel(t))

	if got := p.NextWord("felëje", 5); got != nil {
		t.Errorf("unknown word should return nil, got %+v", got)
	}
}
