package token

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Token is a normalized word token
type Token struct {
	Surface      string `json:"surface"`       // Lowercased surface form
	Length       int    `json:"length"`        // In runes
	HasDiacritic bool   `json:"has_diacritic"` // Contains a language-specific diacritic letter
}

// Tokenizer splits text into word tokens using an alphabet-aware boundary
// rule: every letter of the configured alphabet, diacritics included, is a
// word character. Apostrophe- and hyphen-joined compounds stay single tokens.
//
// Tokenization is idempotent: splitting already-separated lowercase tokens
// yields the same tokens. No stemming, lemmatization, or stopword removal is
// performed; stopwords carry most of the frequency mass and the lexical model
// needs them.
type Tokenizer struct {
	wordRE     *regexp.Regexp
	letters    map[rune]bool
	diacritics map[rune]bool
}

// New builds a Tokenizer from a lowercase alphabet and the diacritic letters
// within it
func New(letters string, diacritics []string) (*Tokenizer, error) {
	if letters == "" {
		return nil, fmt.Errorf("empty alphabet")
	}

	class := characterClass(letters)
	re, err := regexp.Compile(`[` + class + `]+(?:['-][` + class + `]+)*`)
	if err != nil {
		return nil, fmt.Errorf("compile word pattern: %w", err)
	}

	lset := make(map[rune]bool)
	for _, r := range letters {
		lset[r] = true
	}

	dia := make(map[rune]bool)
	for _, d := range diacritics {
		for _, r := range d {
			dia[r] = true
		}
	}

	return &Tokenizer{wordRE: re, letters: lset, diacritics: dia}, nil
}

// characterClass builds a regexp character class covering both cases of the
// alphabet
func characterClass(letters string) string {
	var b strings.Builder
	for _, r := range letters {
		b.WriteRune(r)
		if u := unicode.ToUpper(r); u != r {
			b.WriteRune(u)
		}
	}
	return b.String()
}

// Split tokenizes a text into normalized tokens
func (t *Tokenizer) Split(text string) []Token {
	// Precomposed form so combining sequences match the alphabet class
	text = norm.NFC.String(text)

	matches := t.wordRE.FindAllString(text, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		surface := strings.ToLower(m)
		tokens = append(tokens, Token{
			Surface:      surface,
			Length:       len([]rune(surface)),
			HasDiacritic: t.hasDiacritic(surface),
		})
	}
	return tokens
}

// Words tokenizes a text and returns only the surface forms
func (t *Tokenizer) Words(text string) []string {
	tokens := t.Split(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Surface
	}
	return words
}

// Scan tokenizes a reader line by line, calling fn once per token.
// Each call starts a fresh scan, so the sequence is restartable by seeking
// the reader and calling Scan again.
func (t *Tokenizer) Scan(r io.Reader, fn func(Token) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range t.Split(scanner.Text()) {
			if err := fn(tok); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan text: %w", err)
	}
	return nil
}

// CharacterStream reduces a text to the characters relevant for character
// frequency analysis: alphabet letters lowercased, with runs of everything
// else collapsed to a single space as the token boundary marker.
func (t *Tokenizer) CharacterStream(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	lastSpace := true
	for _, r := range text {
		lower := unicode.ToLower(r)
		if t.isLetter(lower) {
			b.WriteRune(lower)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// isLetter reports whether r is part of the configured alphabet
func (t *Tokenizer) isLetter(r rune) bool {
	return t.letters[r]
}

// hasDiacritic reports whether s contains a configured diacritic letter or a
// combining mark. Precomposed letters like ł never decompose to a mark, so
// the configured set is checked first.
func (t *Tokenizer) hasDiacritic(s string) bool {
	for _, r := range s {
		if t.diacritics[r] {
			return true
		}
	}
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			return true
		}
	}
	return false
}
