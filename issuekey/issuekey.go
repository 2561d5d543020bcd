// Package issuekey classifies publication filenames and recovers issue
// metadata (spec §4.1).
package issuekey

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jwsched/parser/internal/xerrors"
)

// PublicationType identifies which publication family a filename names.
type PublicationType string

const (
	MWB PublicationType = "MWB"
	W   PublicationType = "W"
)

// Container identifies the archive container format.
type Container string

const (
	JWPUB Container = "JWPUB"
	EPUB  Container = "EPUB"
)

// minYearMonth is the minimum supported year*100+month per publication type.
const (
	minMWBYearMonth = 202207
	minWYearMonth   = 202304
)

// IssueKey identifies one publication issue (spec §3).
type IssueKey struct {
	PublicationType PublicationType
	Language        string
	Year            int
	Month           int
	Container       Container
}

var (
	mwbPattern = regexp.MustCompile(`(?i)^mwb_([A-Z]{1,3})_(20[2-9]\d)(0[1-9]|1[0-2])\.(jwpub|epub)$`)
	wPattern   = regexp.MustCompile(`(?i)^w_([A-Z]{1,3})_(20[2-9]\d)(0[1-9]|1[0-2])\.(jwpub|epub)$`)
)

// basename reduces a path-like string to its trailing basename, splitting on
// whichever of '/' or '\' appears later in the string.
func basename(path string) string {
	slash := strings.LastIndexByte(path, '/')
	backslash := strings.LastIndexByte(path, '\\')
	idx := slash
	if backslash > idx {
		idx = backslash
	}
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// Classify parses a filename (or any path-like string) and recovers its
// IssueKey, or returns a tagged *xerrors.Error.
func Classify(path string) (IssueKey, error) {
	name := basename(path)

	if m := mwbPattern.FindStringSubmatch(name); m != nil {
		return build(MWB, m, minMWBYearMonth)
	}
	if m := wPattern.FindStringSubmatch(name); m != nil {
		return build(W, m, minWYearMonth)
	}
	return IssueKey{}, xerrors.Newf(xerrors.InvalidFilename, "filename %q does not match the mwb_/w_ pattern", name)
}

func build(pubType PublicationType, m []string, minYearMonth int) (IssueKey, error) {
	lang := m[1]
	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	ext := strings.ToLower(m[4])

	if year*100+month < minYearMonth {
		return IssueKey{}, xerrors.Newf(xerrors.UnsupportedIssue,
			"%s issue %04d-%02d predates the minimum supported month %04d-%02d",
			pubType, year, month, minYearMonth/100, minYearMonth%100)
	}

	container := EPUB
	if ext == "jwpub" {
		container = JWPUB
	}

	return IssueKey{
		PublicationType: pubType,
		Language:        lang,
		Year:            year,
		Month:           month,
		Container:       container,
	}, nil
}
