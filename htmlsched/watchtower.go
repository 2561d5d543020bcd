package htmlsched

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/langprofile"
	"github.com/jwsched/parser/schedule"
)

// hrefTailPattern recovers the trailing path component preceding a required
// final slash from a TOC link href (spec §4.6.3).
var hrefTailPattern = regexp.MustCompile(`.+:(\w+)/$`)

// ArticleFetcher resolves a TOC link's captured identifier — a numeric
// MepsDocumentId for JWPUB issues, or a basename stem for EPUB issues — to
// the linked study article's parsed document body.
type ArticleFetcher func(capturedID string) (*goquery.Document, bool)

// ExtractWStudies walks a Watchtower TOC document and recovers one WStudy
// per h3 entry that resolves cleanly (spec §4.6.3). Malformed or
// unresolvable entries are skipped silently per spec §7's per-document
// recovery policy; onSkip, when non-nil, is notified with the reason.
func ExtractWStudies(toc *goquery.Document, profile *langprofile.Profile, year int, fetch ArticleFetcher, onSkip func(reason string)) []schedule.WStudy {
	var out []schedule.WStudy

	skip := func(reason string) {
		if onSkip != nil {
			onSkip(reason)
		}
	}

	toc.Find("h3").Each(func(_ int, h3 *goquery.Selection) {
		studyDateRaw := h3.Text()
		if desc := h3.Find(".desc").First(); desc.Length() > 0 {
			studyDateRaw = desc.Text()
		}
		studyDateRaw = normalizeText(studyDateRaw)

		sib := nextElement(h3.Get(0))
		if sib == nil {
			skip("toc h3 has no next sibling")
			return
		}
		sibSel := node(sib)

		link := sibSel.Find("a").First()
		if link.Length() == 0 {
			skip("toc h3's next sibling has no link")
			return
		}
		href, _ := link.Attr("href")
		m := hrefTailPattern.FindStringSubmatch(href)
		if m == nil {
			skip("toc link href does not match the expected pattern")
			return
		}
		capturedID := m[1]

		article, ok := fetch(capturedID)
		if !ok {
			skip("could not resolve study article for id " + capturedID)
			return
		}

		studyTitle := normalizeText(article.Find("h2").First().Text())
		if studyTitle == "" {
			studyTitle = normalizeText(link.Text())
		}

		study := schedule.WStudy{
			StudyDateLocale: studyDateRaw,
			StudyDate:       studyDateRaw,
			StudyTitle:      studyTitle,
		}
		if profile != nil {
			if normalized, ok := profile.NormalizeStudyDate(studyDateRaw, year); ok {
				study.StudyDate = normalized
			}
		}

		study.OpeningSong, study.ConcludingSong = extractStudySongs(article)

		out = append(out, study)
	})

	return out
}

// extractStudySongs recovers the opening and concluding song fields from a
// resolved study article body (spec §4.6.3).
func extractStudySongs(article *goquery.Document) (opening, concluding schedule.Field) {
	refs := article.Find(".pubRefs")
	n := refs.Length()
	if n == 0 {
		return schedule.Field{}, schedule.Field{}
	}

	opening = schedule.SongNumber(strings.TrimSpace(refs.First().Text()))

	if n == 2 {
		if teach := article.Find(".blockTeach").First(); teach.Length() > 0 {
			if sib := nextElement(teach.Get(0)); sib != nil {
				concluding = schedule.SongNumber(strings.TrimSpace(node(sib).Text()))
			}
			return opening, concluding
		}
	}

	concluding = schedule.SongNumber(strings.TrimSpace(refs.Last().Text()))
	return opening, concluding
}
