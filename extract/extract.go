// Package extract collects class tokens from markup and source files.
//
// HTML documents are parsed and every class attribute is read. Other sources
// (templates, JSX, Svelte, Go templ files) are searched for class attribute
// markers in a single pass and the quoted value after each marker is taken.
// Tokens are split with the bracket-aware scanner so grouped syntax such as
// "flex[col jc-center]" stays one token, and are returned de-duplicated in
// first-seen order.
package extract

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/pkg/errors"

	"github.com/benbjohnson/tailcss/scanner"
)

// HTML returns the class tokens of every element in an HTML document.
func HTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	var set tokenSet
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("class")
		set.addAll(v)
	})
	return set.tokens, nil
}

// markers are the attribute openings recognised in non-HTML sources. Each
// is followed by a value that ends at its closing quote, or for the
// class: directive at the first "=", whitespace or tag end.
var markers = []string{
	`class="`,
	`class='`,
	`className="`,
	`className='`,
	`class:`,
}

var (
	matcher     ahocorasick.AhoCorasick
	matcherOnce sync.Once
)

func markerMatcher() ahocorasick.AhoCorasick {
	matcherOnce.Do(func() {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			MatchKind: ahocorasick.LeftMostLongestMatch,
			DFA:       true,
		})
		matcher = builder.Build(markers)
	})
	return matcher
}

// Source returns the class tokens found after class attribute markers in b.
func Source(b []byte) []string {
	s := string(b)

	var set tokenSet
	for _, m := range markerMatcher().FindAll(s) {
		marker := markers[m.Pattern()]
		rest := s[m.End():]

		var end int
		if q := marker[len(marker)-1]; q == '"' || q == '\'' {
			if end = strings.IndexByte(rest, q); end < 0 {
				continue
			}
			set.addAll(rest[:end])
			continue
		}

		// class:name={expr} names a single class.
		for end < len(rest) && !scanner.IsWhitespace(rune(rest[end])) && rest[end] != '=' && rest[end] != '>' && rest[end] != '/' {
			end++
		}
		set.add(rest[:end])
	}
	return set.tokens
}

// File returns the class tokens in the file at path. Files with an .html or
// .htm extension are parsed as HTML; everything else is searched as source.
func File(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		a, err := HTML(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrapf(err, "extract %s", path)
		}
		return a, nil
	}
	return Source(b), nil
}

// Merge combines token lists, de-duplicating in first-seen order.
func Merge(lists ...[]string) []string {
	var set tokenSet
	for _, a := range lists {
		for _, tok := range a {
			set.add(tok)
		}
	}
	return set.tokens
}

// tokenSet collects unique tokens in insertion order.
type tokenSet struct {
	seen   map[string]struct{}
	tokens []string
}

func (s *tokenSet) add(tok string) {
	if tok == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[tok]; ok {
		return
	}
	s.seen[tok] = struct{}{}
	s.tokens = append(s.tokens, tok)
}

func (s *tokenSet) addAll(attr string) {
	for _, tok := range scanner.Fields(attr) {
		s.add(tok)
	}
}
