package htmlsched

import (
	"regexp"
	"strings"

	"github.com/jwsched/parser/langprofile"
	"github.com/jwsched/parser/schedule"
)

// numberedTitlePattern recovers a "N. title" prefix from a schedule segment
// (spec §4.6.2).
var numberedTitlePattern = regexp.MustCompile(`^(\d+)\.\s*(.+?)(?:\s*\(|$)`)

// decomposed is the enhanced breakdown of one raw AYF/LC/TGW schedule
// segment (spec §4.6.2).
type decomposed struct {
	Time      schedule.Field
	Type      string
	FullTitle string
	Src       string
}

// decomposeSource applies §4.6.2's enhanced decomposition to a raw segment.
// profile may be nil, in which case Time is absent and Type stays empty.
func decomposeSource(s string, profile *langprofile.Profile) decomposed {
	d := decomposed{FullTitle: s, Src: parenSpan(s)}

	if profile == nil {
		return d
	}

	if n, ok := profile.ExtractMinutes(s); ok {
		d.Time = schedule.NumField(n)
	}

	if m := numberedTitlePattern.FindStringSubmatch(s); m != nil {
		title := strings.TrimSpace(m[2])
		d.Type = title
		d.FullTitle = m[1] + ". " + title
	}

	return d
}

// parenSpan returns the substring between the first '(' and the last ')' in
// s, trimmed, or s itself when s has no parentheses (spec §4.6.2).
func parenSpan(s string) string {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open == -1 || close == -1 || close <= open {
		return s
	}
	return strings.TrimSpace(s[open+1 : close])
}

// typeField wraps a decomposed Type as a Field, or an absent Field when Type
// was never populated.
func (d decomposed) typeField() schedule.Field {
	if d.Type == "" {
		return schedule.Field{}
	}
	return schedule.TextField(d.Type)
}

// srcField wraps a decomposed Src as a Field; Src falls back to the original
// segment when it has no parentheses, so it is absent only for an empty
// segment or one whose parentheses enclose nothing but whitespace.
func (d decomposed) srcField() schedule.Field {
	if d.Src == "" {
		return schedule.Field{}
	}
	return schedule.TextField(d.Src)
}
