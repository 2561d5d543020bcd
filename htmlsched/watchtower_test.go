package htmlsched

import (
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/schedule"
)

const tocHTML = `
<html><body>
<h3><span class="desc">January 1-7</span></h3>
<p><a href="jwpub:x:article042/">Title One</a></p>
</body></html>`

const articleHTML = `
<html><body>
<h2>Title One Full</h2>
<p class="pubRefs">Song 45</p>
<p class="pubRefs">Song 120</p>
</body></html>`

func TestExtractWStudiesScenario5(t *testing.T) {
	toc := mustParse(t, tocHTML)
	article := mustParse(t, articleHTML)

	fetch := func(id string) (*goquery.Document, bool) {
		if id == "article042" {
			return article, true
		}
		return nil, false
	}

	var skipped []string
	studies := ExtractWStudies(toc, nil, 2024, fetch, func(r string) { skipped = append(skipped, r) })

	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}
	if len(studies) != 1 {
		t.Fatalf("len(studies) = %d, want 1", len(studies))
	}
	s := studies[0]
	if s.StudyTitle != "Title One Full" {
		t.Errorf("StudyTitle = %q", s.StudyTitle)
	}
	if s.OpeningSong != schedule.NumField(45) {
		t.Errorf("OpeningSong = %+v, want 45", s.OpeningSong)
	}
	if s.ConcludingSong != schedule.NumField(120) {
		t.Errorf("ConcludingSong = %+v, want 120", s.ConcludingSong)
	}
}

func TestExtractWStudiesSkipsUnresolvableLink(t *testing.T) {
	toc := mustParse(t, tocHTML)
	fetch := func(id string) (*goquery.Document, bool) { return nil, false }

	var skipped []string
	studies := ExtractWStudies(toc, nil, 2024, fetch, func(r string) { skipped = append(skipped, r) })

	if len(studies) != 0 {
		t.Errorf("expected no studies, got %d", len(studies))
	}
	if len(skipped) != 1 {
		t.Errorf("expected exactly one skip, got %d", len(skipped))
	}
}

func TestIsWValid(t *testing.T) {
	if !IsWValid(mustParse(t, tocHTML)) {
		t.Error("expected TOC to be W-valid")
	}
	if IsWValid(mustParse(t, `<html><body><p>x</p></body></html>`)) {
		t.Error("expected bare document to be W-invalid")
	}
}
