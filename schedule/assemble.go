package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwsched/parser/internal/logging"
	"github.com/jwsched/parser/internal/xerrors"
	"github.com/jwsched/parser/issuekey"
)

// Assembler collects per-document results for a single issue and produces
// the final ParsedIssue (spec §2 item 8). It is not safe for concurrent use.
type Assembler struct {
	key    issuekey.IssueKey
	ctx    context.Context
	weeks  []MWBWeek
	studies []WStudy
}

// NewAssembler starts a run scoped to one issue, stamping a run ID onto ctx
// for correlated logging across every document recovered or dropped while
// building this issue (grounded on the request-ID pattern used when jobs are
// enqueued).
func NewAssembler(ctx context.Context, key issuekey.IssueKey) (*Assembler, context.Context) {
	ctx = logging.WithRunID(ctx, uuid.New().String())
	return &Assembler{key: key, ctx: ctx}, ctx
}

// AddWeek appends a successfully parsed MWB week in document order.
func (a *Assembler) AddWeek(w MWBWeek) {
	a.weeks = append(a.weeks, w)
}

// AddStudy appends a successfully parsed Watchtower study week in document order.
func (a *Assembler) AddStudy(s WStudy) {
	a.studies = append(a.studies, s)
}

// Skip records that one document within the issue could not be parsed and
// was dropped rather than failing the whole issue. Per spec §7, a single
// document's failure is locally recovered and logged at Debug, never
// propagated as the issue's result.
func (a *Assembler) Skip(stage, reason string, args ...any) {
	logging.RecoveredDocument(a.ctx, stage, reason, args...)
}

// Finish produces the ParsedIssue for this run. A total failure to recover
// any week or study from an otherwise valid archive is not an error (spec
// §7): it yields an empty, but present, list for the issue's publication
// type.
func (a *Assembler) Finish() (ParsedIssue, error) {
	issue := ParsedIssue{
		SchemaVersion: SchemaVersion,
		Language:      a.key.Language,
		Year:          a.key.Year,
		Month:         a.key.Month,
	}

	switch a.key.PublicationType {
	case issuekey.MWB:
		issue.PublicationType = MWB
		issue.MWBSchedules = a.weeks
		if issue.MWBSchedules == nil {
			issue.MWBSchedules = []MWBWeek{}
		}
	case issuekey.W:
		issue.PublicationType = Watchtower
		issue.WSchedules = a.studies
		if issue.WSchedules == nil {
			issue.WSchedules = []WStudy{}
		}
	default:
		return ParsedIssue{}, xerrors.Newf(xerrors.MalformedContent, "unrecognized publication type %q", a.key.PublicationType)
	}

	return issue, nil
}
