// Package langprofile provides per-language regular expressions and
// month-name tables driving enhanced date normalization, duration
// extraction, and part-type extraction (spec §4.7). Unsupported languages
// fall back gracefully: callers receive the raw text verbatim.
package langprofile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Profile is a single language's enhanced-parsing rules.
type Profile struct {
	// Code is the canonical single-letter profile key ("E", "K", "P").
	Code string

	months map[string]int

	mwbDatePattern    *regexp.Regexp // MWB week-date text
	wStudyDatePattern *regexp.Regexp // Watchtower study-date text
	minutesPattern    *regexp.Regexp

	// The *Group fields record which capture group holds which field, since English puts the month before the day and
	// Ukrainian/Polish put the day before the month (spec §4.7).
	mwbMonthGroup, mwbDayGroup                           int
	wOrdinalGroup, wMonthGroup, wDayGroup, wEndDayGroup, wYearGroup int
}

var registry = map[string]*Profile{}

func register(p *Profile) {
	registry[p.Code] = p
	// spec §9 Open Question: monthNameToNumber uses "K" internally for
	// Ukrainian, while filenames use "U". Both letters resolve to the same
	// profile; filename lookups must not silently drop Ukrainian inputs.
	if p.Code == "K" {
		registry["U"] = p
	}
}

// ForLanguage resolves a filename language letter to its Profile. The
// second return value is false when no enhanced profile exists for lang,
// in which case callers must fall back to verbatim text (spec §4.7).
func ForLanguage(lang string) (*Profile, bool) {
	p, ok := registry[strings.ToUpper(lang)]
	return p, ok
}

// MonthNumber resolves a month name (any case/form registered for this
// profile) to its 1-12 number.
func (p *Profile) MonthNumber(name string) (int, bool) {
	n, ok := p.months[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}

// NormalizeMWBDate matches the profile's mwbDatePattern against raw week
// date text and formats "YYYY/MM/DD" using the issue year, or returns
// ("", false) on no match (spec §4.7 MWB date normalization).
func (p *Profile) NormalizeMWBDate(raw string, year int) (string, bool) {
	m := p.mwbDatePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	monthName := m[p.mwbMonthGroup]
	dayStr := m[p.mwbDayGroup]

	month, ok := p.MonthNumber(monthName)
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%04d/%02d/%02d", year, month, day), true
}

// NormalizeStudyDate matches the profile's wStudyDatePattern against raw
// Watchtower study-date text and formats "YYYY/MM/DD" (spec §4.7 W study
// date normalization). The matched year, when present, overrides the
// issue's nominal year (study dates occasionally straddle a year
// boundary); fallbackYear is used when the pattern has no year group.
func (p *Profile) NormalizeStudyDate(raw string, fallbackYear int) (string, bool) {
	m := p.wStudyDatePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}

	monthName := m[p.wMonthGroup]
	dayStr := m[p.wDayGroup]

	month, ok := p.MonthNumber(monthName)
	if !ok {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}

	year := fallbackYear
	if p.wYearGroup > 0 && p.wYearGroup < len(m) && m[p.wYearGroup] != "" {
		if y, err := strconv.Atoi(m[p.wYearGroup]); err == nil {
			year = y
		}
	}

	return fmt.Sprintf("%04d/%02d/%02d", year, month, day), true
}

// ExtractMinutes returns the first integer immediately followed by the
// language's minutes marker (e.g. English "min."), or (0, false) if none
// is present (spec §4.7.2 `time`).
func (p *Profile) ExtractMinutes(s string) (int, bool) {
	m := p.minutesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
