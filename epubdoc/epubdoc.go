// Package epubdoc filters an EPUB archive's HTML entries and classifies
// them into MWB week documents or the single Watchtower TOC (spec §4.5).
package epubdoc

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/htmlsched"
	"github.com/jwsched/parser/internal/xerrors"
	"github.com/jwsched/parser/ziparchive"
)

var htmlExtensions = []string{".html", ".xhtml", ".htm"}

func isHTMLEntry(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range htmlExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Store is a parsed view over one EPUB issue's HTML entries.
type Store struct {
	archive ziparchive.Archive
	// names holds the archive's HTML entry names in sorted order, giving a
	// stable document iteration order (spec §3 ParsedIssue: "document
	// iteration order for MWB").
	names []string
}

// Open collects the names of every HTML/XHTML/HTM entry of archive in sorted
// order. Entries are parsed on demand by the Store's lookup methods.
func Open(archive ziparchive.Archive) *Store {
	names := make([]string, 0, len(archive))
	for name := range archive {
		if isHTMLEntry(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return &Store{archive: archive, names: names}
}

func (s *Store) parse(name string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(s.archive[name])))
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.MalformedContent, err, "parsing %q as HTML", name)
	}
	doc.Find("rt").Remove()
	return doc, nil
}

// MWBWeeks parses every MWB-valid HTML entry in iteration order.
func (s *Store) MWBWeeks() ([]*goquery.Document, error) {
	var docs []*goquery.Document
	for _, name := range s.names {
		doc, err := s.parse(name)
		if err != nil {
			return nil, err
		}
		if htmlsched.IsMWBValid(doc) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// WatchtowerTOC returns the single W-valid HTML entry. More than one is
// MALFORMED_CONTENT; zero returns a nil document with no error.
func (s *Store) WatchtowerTOC() (*goquery.Document, error) {
	var toc *goquery.Document
	found := 0
	for _, name := range s.names {
		doc, err := s.parse(name)
		if err != nil {
			return nil, err
		}
		if htmlsched.IsWValid(doc) {
			found++
			if found == 1 {
				toc = doc
			}
		}
	}
	if found > 1 {
		return nil, xerrors.Newf(xerrors.MalformedContent, "found %d w-valid documents, expected at most 1", found)
	}
	return toc, nil
}

// ArticleByBasename locates a same-basename archive entry and parses it,
// resolving a Watchtower TOC link by its href's basename (spec §4.6.3).
func (s *Store) ArticleByBasename(stem string) (*goquery.Document, bool) {
	for _, name := range s.names {
		b := basename(name)
		if b == stem || strings.TrimSuffix(b, extOf(b)) == stem {
			doc, err := s.parse(name)
			if err != nil {
				return nil, false
			}
			return doc, true
		}
	}
	return nil, false
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
