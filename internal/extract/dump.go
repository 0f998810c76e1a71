package extract

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"strings"

	"korpus/internal/model"

	"github.com/dustin/go-wikiparse"
)

// Article is one cleaned article from the dump
type Article struct {
	Title string
	Text  string
}

// Extractor streams articles out of a Wikipedia XML dump. Pages are decoded
// incrementally so a full dump never has to fit in memory. Non-article
// namespaces, redirects, and meta pages are skipped; the rest has its wiki
// markup stripped before being handed to the caller.
type Extractor struct {
	stripper   *MarkupStripper
	metaTitles []string
	stats      model.CorpusStats
}

// NewExtractor builds an extractor from the configured markup rules and
// meta-page title prefixes
func NewExtractor(cfg *model.Config) (*Extractor, error) {
	stripper, err := NewMarkupStripper(cfg.Markup.Rules)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		stripper:   stripper,
		metaTitles: cfg.Language.MetaTitles,
	}, nil
}

// Extract streams the dump at path, calling fn once per cleaned article.
// A .bz2 suffix selects transparent decompression. Malformed XML aborts the
// run with a ParseError; there is no partial-output recovery, rerunning the
// pipeline is the recovery path.
func (e *Extractor) Extract(path string, fn func(Article) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", model.ErrInputNotFound, path)
		}
		return fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	p, err := wikiparse.NewParser(r)
	if err != nil {
		return &model.ParseError{Path: path, Err: err}
	}

	for {
		page, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &model.ParseError{Path: path, Err: err}
		}

		e.stats.PagesSeen++

		// Articles only
		if page.Ns != 0 {
			e.stats.SkippedMeta++
			continue
		}
		if page.Redir.Title != "" {
			e.stats.SkippedRedirects++
			continue
		}
		if e.isMetaTitle(page.Title) {
			e.stats.SkippedMeta++
			continue
		}
		if len(page.Revisions) == 0 {
			continue
		}

		cleaned, removed := e.stripper.Strip(page.Revisions[0].Text)
		e.stats.MarkupRemovedChars += removed

		if strings.TrimSpace(cleaned) == "" {
			continue
		}

		e.stats.TotalArticles++
		if err := fn(Article{Title: page.Title, Text: cleaned}); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns the running extraction statistics
func (e *Extractor) Stats() model.CorpusStats {
	return e.stats
}

func (e *Extractor) isMetaTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, prefix := range e.metaTitles {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
