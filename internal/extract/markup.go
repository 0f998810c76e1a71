package extract

import (
	"fmt"
	"regexp"
	"strings"

	"korpus/internal/model"
	"golang.org/x/net/html"
)

// MarkupStripper removes wiki syntax and residual HTML from raw article
// text. The wiki-syntax rules come from configuration; anything HTML-shaped
// that survives them is stripped structurally rather than by pattern.
type MarkupStripper struct {
	rules []compiledRule
}

type compiledRule struct {
	name    string
	re      *regexp.Regexp
	replace string
}

// NewMarkupStripper compiles the configured strip rules
func NewMarkupStripper(rules []model.MarkupRule) (*MarkupStripper, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("markup rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{name: r.Name, re: re, replace: r.Replace})
	}
	return &MarkupStripper{rules: compiled}, nil
}

// Strip applies the wiki-syntax rules in order, then removes remaining HTML
// tags and entities. Returns the cleaned text and how many characters the
// markup accounted for.
func (s *MarkupStripper) Strip(text string) (string, int) {
	original := len(text)

	for _, rule := range s.rules {
		text = rule.re.ReplaceAllString(text, rule.replace)
	}

	text = stripHTML(text)
	text = html.UnescapeString(text)

	removed := original - len(text)
	if removed < 0 {
		removed = 0
	}
	return text, removed
}

// stripHTML drops tags while keeping visible text. Wiki text is not valid
// HTML, but the parser is lenient enough for the tag fragments that show up
// in dumps. Script and style content is discarded entirely.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Parse failures on fragments are rare; fall back to the raw text
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}
