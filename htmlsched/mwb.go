package htmlsched

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/langprofile"
	"github.com/jwsched/parser/schedule"
)

// ExtractMWBWeek recovers a single MWBWeek from a valid MWB week document
// (spec §4.6.1). profile may be nil when the issue's language has no
// enhanced parsing support.
func ExtractMWBWeek(doc *goquery.Document, profile *langprofile.Profile, year int) schedule.MWBWeek {
	var week schedule.MWBWeek

	week.WeekDateLocale = normalizeText(doc.Find("h1").First().Text())
	week.WeekDate = week.WeekDateLocale
	if profile != nil {
		if normalized, ok := profile.NormalizeMWBDate(week.WeekDateLocale, year); ok {
			week.WeekDate = normalized
		}
	}

	week.WeeklyBibleReading = normalizeText(doc.Find("h2").First().Text())

	week.AYFCount = ayfCount(doc)
	week.LCCount = lcCount(doc)

	segments := sourceSegments(doc)
	seg := func(i int) string {
		if i < 0 || i >= len(segments) {
			return ""
		}
		return normalizeText(segments[i])
	}

	week.SongFirst = schedule.SongNumber(seg(1))

	talk := decomposeSource(seg(3), profile)
	week.TGWTalk = talk.typeFieldOrRaw(seg(3))
	week.TGWTalkTitle = talk.FullTitle

	week.TGWGemsTitle = seg(4)

	bread := decomposeSource(seg(7), profile)
	week.TGWBread = bread.srcField()
	week.TGWBreadTitle = bread.FullTitle

	for n := 1; n <= week.AYFCount && n <= 4; n++ {
		d := decomposeSource(seg(7+n), profile)
		week.AYFParts[n-1] = schedule.AYFPart{
			Time:  d.Time,
			Type:  d.typeField(),
			Title: d.FullTitle,
		}
	}

	week.SongMiddle = schedule.SongNumber(seg(8 + week.AYFCount + 1))

	lc1 := decomposeSource(seg(8+week.AYFCount+2), profile)
	week.LCParts[0] = schedule.LCPart{Time: lc1.Time, Content: lc1.srcField(), Title: lc1.FullTitle}

	if week.LCCount == 2 {
		lc2 := decomposeSource(seg(8+week.AYFCount+3), profile)
		week.LCParts[1] = schedule.LCPart{Time: lc2.Time, Content: lc2.srcField(), Title: lc2.FullTitle}
	}

	cbs := decomposeSource(seg(8+week.AYFCount+week.LCCount+2), profile)
	week.LCCBS = cbs.srcField()
	week.LCCBSTitle = cbs.FullTitle

	week.SongConclude = schedule.SongNumber(seg(8 + week.AYFCount + week.LCCount + 4))

	return week
}

// typeFieldOrRaw mirrors decomposed.typeField but falls back to the raw
// segment text when no "N. title" prefix was found, matching tgwTalk's
// "type = part name" rule even for undecorated talk titles.
func (d decomposed) typeFieldOrRaw(raw string) schedule.Field {
	if d.Type != "" {
		return schedule.TextField(d.Type)
	}
	if raw == "" {
		return schedule.Field{}
	}
	return schedule.TextField(raw)
}

func ayfCount(doc *goquery.Document) int {
	if sec := doc.Find("#section3"); sec.Length() > 0 {
		return sec.ChildrenFiltered("li").Length()
	}
	n := doc.Find(".du-color--gold-700").Length()
	if n-1 > 1 {
		return n - 1
	}
	return 1
}

func lcCount(doc *goquery.Document) int {
	if sec := doc.Find("#section4"); sec.Length() > 0 {
		if sec.ChildrenFiltered("li").Length() == 6 {
			return 2
		}
		return 1
	}
	n := doc.Find(".du-color--maroon-600.du-margin-top--8.du-margin-bottom--0").Length()
	if n-1 > 1 {
		return n - 1
	}
	return 1
}

// sourceSegments builds the "@"-joined schedule source sequence and splits
// it into segments (spec §4.6.1). The pGroup strategy is preferred; the h3
// fallback runs only when it yields nothing.
func sourceSegments(doc *goquery.Document) []string {
	var buf strings.Builder

	doc.Find(".pGroup li").Each(func(_ int, li *goquery.Selection) {
		buf.WriteByte('@')
		buf.WriteString(li.Find("p").First().Text())
	})

	if buf.Len() == 0 {
		buf.WriteString(h3FallbackSequence(doc))
	}

	return strings.Split(buf.String(), "@")
}

// h3FallbackSequence implements the h3 fallback source-sequence strategy
// (spec §4.6.1). Preserved verbatim including the @junk@junk heuristic,
// which is only ever exercised on this path.
func h3FallbackSequence(doc *goquery.Document) string {
	var buf strings.Builder
	songOrdinal := 0

	doc.Find("h3").Each(func(_ int, h3 *goquery.Selection) {
		n := h3.Get(0)

		if isSongHeading(h3) {
			songOrdinal++
			text := strings.ReplaceAll(h3.Text(), "|", "@")
			buf.WriteByte('@')
			buf.WriteString(text)

			if songOrdinal == 2 {
				if div := nextElement(n); div != nil && div.Data == "div" {
					if afterDiv := nextElement(div); afterDiv == nil || afterDiv.Data != "h3" {
						divSel := node(div)
						buf.WriteString(divSel.Find("p").First().Text())
						if next := nextElement(div); next != nil {
							if text := strings.TrimSpace(node(next).Find("p").First().Text()); text != "" {
								buf.WriteByte(' ')
								buf.WriteString(text)
							}
						}
					}
				}
			}
			return
		}

		if isPartHeading(h3) {
			buf.WriteByte('@')
			buf.WriteString(h3.Text())
			if sib := nextElement(n); sib != nil {
				if p := node(sib).Find("p").First(); p.Length() > 0 {
					buf.WriteString(p.Text())
				}
			}
		}
	})

	return insertJunk(buf.String())
}

func isSongHeading(h3 *goquery.Selection) bool {
	if h3.HasClass("dc-icon--music") {
		return true
	}
	return h3.Find(".dc-icon--music").Length() > 0
}

func isPartHeading(h3 *goquery.Selection) bool {
	parent := h3.Parent()
	return !parent.HasClass("boxContent")
}

// insertJunk inserts the literal "@junk@junk" immediately before the 5th
// "@" separator in buf, reserving two segments that do not otherwise exist
// in the h3 fallback layout (spec §9 Open Questions: preserved verbatim for
// bug-for-bug compatibility).
func insertJunk(buf string) string {
	count := 0
	for i, r := range buf {
		if r == '@' {
			count++
			if count == 5 {
				return buf[:i] + "@junk@junk" + buf[i:]
			}
		}
	}
	return buf
}
