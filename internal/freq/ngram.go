package freq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Boundary separates tokens in the character stream. N-gram windows that
// cross it are skipped.
const Boundary = ' '

// CountCharacters counts every rune of the character stream, boundary
// included: the space frequency matters for keyboard layout decisions.
func CountCharacters(text string) *Counter {
	c := NewCounter("char")
	for _, r := range text {
		c.Add(string(r))
	}
	return c
}

// CountNGrams counts sliding windows of n runes over the character stream,
// skipping windows that contain the token boundary.
func CountNGrams(text string, n int) *Counter {
	kind := fmt.Sprintf("%d-gram", n)
	switch n {
	case 2:
		kind = "digraph"
	case 3:
		kind = "trigraph"
	}

	c := NewCounter(kind)
	runes := []rune(text)
	for i := 0; i+n <= len(runes); i++ {
		window := runes[i : i+n]
		if crossesBoundary(window) {
			continue
		}
		c.Add(string(window))
	}
	return c
}

func crossesBoundary(window []rune) bool {
	for _, r := range window {
		if r == Boundary {
			return true
		}
	}
	return false
}

// CountWords counts word tokens, one per line, from a tokens file
func CountWords(r io.Reader) (*Counter, error) {
	c := NewCounter("word")
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		c.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return c, nil
}

// CountTokens counts an in-memory token sequence
func CountTokens(words []string) *Counter {
	c := NewCounter("word")
	for _, w := range words {
		c.Add(w)
	}
	return c
}
