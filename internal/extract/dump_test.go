package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"korpus/internal/model"
)

const testDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/" xml:lang="csb">
  <siteinfo>
    <sitename>Wikipedijô</sitename>
    <dbname>csbwiki</dbname>
    <base>https://csb.wikipedia.org/wiki/Przédnô_starna</base>
    <generator>MediaWiki 1.41.0</generator>
    <case>first-letter</case>
    <namespaces>
      <namespace key="0" />
      <namespace key="14">Kategòrëjô</namespace>
    </namespaces>
  </siteinfo>
  <page>
    <title>Kaszëbë</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>100</id>
      <text>'''Kaszëbë''' to [[region|krôj]] w {{państwò|Pòlskô}} Pòlsce.</text>
    </revision>
  </page>
  <page>
    <title>Gduńsk</title>
    <ns>0</ns>
    <id>2</id>
    <redirect title="Gdańsk" />
    <revision>
      <id>101</id>
      <text>#REDIRECT [[Gdańsk]]</text>
    </revision>
  </page>
  <page>
    <title>Wikipedia:Kawiarenka</title>
    <ns>0</ns>
    <id>3</id>
    <revision>
      <id>102</id>
      <text>Diskùsëjô ò Wikipediji.</text>
    </revision>
  </page>
  <page>
    <title>Kategòrëjô:Miasta</title>
    <ns>14</ns>
    <id>4</id>
    <revision>
      <id>103</id>
      <text>Lësta miastów.</text>
    </revision>
  </page>
  <page>
    <title>Łeba</title>
    <ns>0</ns>
    <id>5</id>
    <revision>
      <id>104</id>
      <text>''Łeba'' je môlëzna nad mòrzã.</text>
    </revision>
  </page>
</mediawiki>
`

func writeTestDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.xml")
	if err := os.WriteFile(path, []byte(testDump), 0o644); err != nil {
		t.Fatalf("write dump: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	e, err := NewExtractor(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	var articles []Article
	err = e.Extract(writeTestDump(t), func(a Article) error {
		articles = append(articles, a)
		return nil
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2 (redirect, meta title, and ns 14 skipped): %+v", len(articles), articles)
	}
	if articles[0].Title != "Kaszëbë" || articles[1].Title != "Łeba" {
		t.Errorf("unexpected titles: %q, %q", articles[0].Title, articles[1].Title)
	}

	cleaned := articles[0].Text
	for _, residue := range []string{"'''", "[[", "]]", "{{", "}}"} {
		if strings.Contains(cleaned, residue) {
			t.Errorf("markup residue %q in %q", residue, cleaned)
		}
	}
	if !strings.Contains(cleaned, "krôj") {
		t.Errorf("piped link label lost: %q", cleaned)
	}

	stats := e.Stats()
	if stats.PagesSeen != 5 {
		t.Errorf("PagesSeen = %d, want 5", stats.PagesSeen)
	}
	if stats.TotalArticles != 2 {
		t.Errorf("TotalArticles = %d, want 2", stats.TotalArticles)
	}
	if stats.SkippedRedirects != 1 {
		t.Errorf("SkippedRedirects = %d, want 1", stats.SkippedRedirects)
	}
	if stats.SkippedMeta != 2 {
		t.Errorf("SkippedMeta = %d, want 2 (meta title + non-article namespace)", stats.SkippedMeta)
	}
	if stats.MarkupRemovedChars == 0 {
		t.Error("MarkupRemovedChars should be nonzero")
	}
}

func TestExtractCallbackError(t *testing.T) {
	e, err := NewExtractor(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	wantErr := errors.New("stop")
	err = e.Extract(writeTestDump(t), func(Article) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("callback error not propagated: %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	e, err := NewExtractor(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	err = e.Extract("/nonexistent/dump.xml", func(Article) error { return nil })
	if !errors.Is(err, model.ErrInputNotFound) {
		t.Errorf("want ErrInputNotFound, got %v", err)
	}
}

func TestExtractMalformedXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xml")
	if err := os.WriteFile(path, []byte("<mediawiki><siteinfo></broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e, err := NewExtractor(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	err = e.Extract(path, func(Article) error { return nil })
	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("want ParseError, got %v", err)
	}
}
