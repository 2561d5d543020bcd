package epubdoc

import (
	"testing"

	"github.com/jwsched/parser/ziparchive"
)

func TestMWBWeeksFiltersValidDocuments(t *testing.T) {
	archive := ziparchive.Archive{
		"OEBPS/01.xhtml": []byte(`<html><body><h1>a</h1><h2>b</h2><div class="pGroup"></div></body></html>`),
		"OEBPS/02.xhtml": []byte(`<html><body><p>not a week</p></body></html>`),
		"OEBPS/style.css": []byte(`body{}`),
	}
	store := Open(archive)

	weeks, err := store.MWBWeeks()
	if err != nil {
		t.Fatalf("MWBWeeks: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("len(weeks) = %d, want 1", len(weeks))
	}
}

func TestWatchtowerTOCRejectsDuplicates(t *testing.T) {
	archive := ziparchive.Archive{
		"toc1.xhtml": []byte(`<html><body><h3>a</h3></body></html>`),
		"toc2.xhtml": []byte(`<html><body><h3>b</h3></body></html>`),
	}
	store := Open(archive)

	if _, err := store.WatchtowerTOC(); err == nil {
		t.Fatal("expected MALFORMED_CONTENT for duplicate TOC documents")
	}
}

func TestWatchtowerTOCEmptyIsNotAnError(t *testing.T) {
	store := Open(ziparchive.Archive{"x.xhtml": []byte(`<html><body><p>no h3 here</p></body></html>`)})

	toc, err := store.WatchtowerTOC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toc != nil {
		t.Error("expected nil toc")
	}
}

func TestArticleByBasename(t *testing.T) {
	archive := ziparchive.Archive{
		"OEBPS/text/article042.xhtml": []byte(`<html><body><h2>Title</h2></body></html>`),
	}
	store := Open(archive)

	doc, ok := store.ArticleByBasename("article042")
	if !ok {
		t.Fatal("expected to resolve article042")
	}
	if got := doc.Find("h2").Text(); got != "Title" {
		t.Errorf("h2 text = %q", got)
	}

	if _, ok := store.ArticleByBasename("missing"); ok {
		t.Error("expected missing lookup to fail")
	}
}
