package token

import (
	"reflect"
	"strings"
	"testing"
)

const (
	testLetters = "aąãbcćdeęéëfghijklłmnńoòóôprsśtuùvwyzźż"
)

var testDiacritics = []string{"ą", "ã", "é", "ë", "ń", "ò", "ó", "ô", "ù", "ł", "ż"}

func newTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := New(testLetters, testDiacritics)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tok
}

func TestSplit(t *testing.T) {
	tok := newTestTokenizer(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentence",
			text: "Kaszëbsczi jãzëk",
			want: []string{"kaszëbsczi", "jãzëk"},
		},
		{
			name: "punctuation boundaries",
			text: "To je, prosto: test.",
			want: []string{"to", "je", "prosto", "test"},
		},
		{
			name: "digits are not word characters",
			text: "w 1999 roku",
			want: []string{"w", "roku"},
		},
		{
			name: "hyphenated compound stays single",
			text: "kaszëbskò-pòmòrsczi region",
			want: []string{"kaszëbskò-pòmòrsczi", "region"},
		},
		{
			name: "apostrophe compound stays single",
			text: "d'un test",
			want: []string{"d'un", "test"},
		},
		{
			name: "uppercase folds to lowercase",
			text: "GDUŃSK Gduńsk",
			want: []string{"gduńsk", "gduńsk"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Words(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitIdempotent(t *testing.T) {
	tok := newTestTokenizer(t)

	text := "Kaszëbë to krôj, w jaczim żëją Kaszëbi."
	first := tok.Words(text)
	second := tok.Words(strings.Join(first, " "))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenization not idempotent: %v != %v", first, second)
	}
}

func TestDiacriticFlag(t *testing.T) {
	tok := newTestTokenizer(t)

	tests := []struct {
		word string
		want bool
	}{
		{"jãzëk", true},
		{"gduńsk", true},
		{"łeba", true}, // ł has no combining-mark decomposition
		{"test", false},
		{"prosto", false},
	}

	for _, tt := range tests {
		tokens := tok.Split(tt.word)
		if len(tokens) != 1 {
			t.Fatalf("Split(%q) = %d tokens, want 1", tt.word, len(tokens))
		}
		if tokens[0].HasDiacritic != tt.want {
			t.Errorf("HasDiacritic(%q) = %v, want %v", tt.word, tokens[0].HasDiacritic, tt.want)
		}
	}
}

func TestTokenLengthInRunes(t *testing.T) {
	tok := newTestTokenizer(t)

	tokens := tok.Split("jãzëk")
	if len(tokens) != 1 {
		t.Fatalf("want 1 token, got %d", len(tokens))
	}
	if tokens[0].Length != 5 {
		t.Errorf("Length = %d, want 5 (runes, not bytes)", tokens[0].Length)
	}
}

func TestCharacterStream(t *testing.T) {
	tok := newTestTokenizer(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "non-letters collapse to single boundary",
			text: "to,  je... test",
			want: "to je test",
		},
		{
			name: "case folds",
			text: "Gduńsk",
			want: "gduńsk",
		},
		{
			name: "digits become boundaries",
			text: "rok 1999 test",
			want: "rok test",
		},
		{
			name: "trailing boundary trimmed",
			text: "test!!!",
			want: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tok.CharacterStream(tt.text); got != tt.want {
				t.Errorf("CharacterStream(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	tok := newTestTokenizer(t)

	var got []string
	err := tok.Scan(strings.NewReader("prosti test\ndrëdżi régel\n"), func(tk Token) error {
		got = append(got, tk.Surface)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"prosti", "test", "drëdżi", "régel"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan tokens = %v, want %v", got, want)
	}
}

func TestNewRejectsEmptyAlphabet(t *testing.T) {
	if _, err := New("", nil); err == nil {
		t.Error("New(\"\") should fail")
	}
}
