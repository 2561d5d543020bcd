// Package parse wires the core pipeline's leaf packages together into the
// single entry point the CLI and fetch façades drive: classify a filename,
// read its archive, branch on container format, interpret its HTML, and
// assemble the result (spec §2).
package parse

import (
	"context"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwsched/parser/epubdoc"
	"github.com/jwsched/parser/htmlsched"
	"github.com/jwsched/parser/internal/logging"
	"github.com/jwsched/parser/internal/xerrors"
	"github.com/jwsched/parser/issuekey"
	"github.com/jwsched/parser/jwpubdoc"
	"github.com/jwsched/parser/langprofile"
	"github.com/jwsched/parser/schedule"
	"github.com/jwsched/parser/ziparchive"
)

// Config is the configuration surface the core consumes (spec §6).
type Config struct {
	Strict                bool // reserved; no behavior today
	EnableEnhancedParsing bool
	MaxTotalBytes         int64
	MaxEntries            int
}

// DefaultConfig returns the default configuration: enhanced parsing on,
// archive limits per ziparchive.DefaultLimits.
func DefaultConfig() Config {
	limits := ziparchive.DefaultLimits()
	return Config{
		EnableEnhancedParsing: true,
		MaxTotalBytes:         limits.MaxTotalBytes,
		MaxEntries:            limits.MaxEntries,
	}
}

// Parse classifies filename, reads data as the matching container format,
// and returns the assembled ParsedIssue.
func Parse(ctx context.Context, filename string, data []byte, cfg Config) (schedule.ParsedIssue, error) {
	key, err := issuekey.Classify(filename)
	if err != nil {
		return schedule.ParsedIssue{}, err
	}

	limits := ziparchive.Limits{MaxTotalBytes: cfg.MaxTotalBytes, MaxEntries: cfg.MaxEntries}
	archive, err := ziparchive.Read(data, limits)
	if err != nil {
		return schedule.ParsedIssue{}, err
	}

	var profile *langprofile.Profile
	if cfg.EnableEnhancedParsing {
		var ok bool
		profile, ok = langprofile.ForLanguage(key.Language)
		if !ok {
			logging.LanguageFallback(ctx, key.Language)
		}
	}

	assembler, ctx := schedule.NewAssembler(ctx, key)

	switch key.Container {
	case issuekey.JWPUB:
		err = parseJWPUB(ctx, archive, key, profile, limits, assembler)
	case issuekey.EPUB:
		err = parseEPUB(ctx, archive, key, profile, assembler)
	default:
		err = xerrors.Newf(xerrors.UnsupportedFormat, "unrecognized container %q", key.Container)
	}
	if err != nil {
		return schedule.ParsedIssue{}, err
	}

	return assembler.Finish()
}

func parseJWPUB(ctx context.Context, archive ziparchive.Archive, key issuekey.IssueKey, profile *langprofile.Profile, limits ziparchive.Limits, assembler *schedule.Assembler) error {
	store, err := jwpubdoc.Open(archive, limits)
	if err != nil {
		return err
	}
	defer store.Close()

	switch key.PublicationType {
	case issuekey.MWB:
		docs, err := store.MWBWeeks()
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return xerrors.New(xerrors.MalformedContent, "no mwb week documents found in archive")
		}
		for _, doc := range docs {
			assembler.AddWeek(htmlsched.ExtractMWBWeek(doc, profile, key.Year))
		}

	case issuekey.W:
		toc, err := store.WatchtowerTOC()
		if err != nil {
			return err
		}
		if toc == nil {
			return nil
		}
		studies := htmlsched.ExtractWStudies(toc, profile, key.Year, jwpubArticleFetcher(store), func(reason string) {
			assembler.Skip("htmlsched", reason)
		})
		for _, s := range studies {
			assembler.AddStudy(s)
		}
	}
	return nil
}

func parseEPUB(ctx context.Context, archive ziparchive.Archive, key issuekey.IssueKey, profile *langprofile.Profile, assembler *schedule.Assembler) error {
	store := epubdoc.Open(archive)

	switch key.PublicationType {
	case issuekey.MWB:
		docs, err := store.MWBWeeks()
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return xerrors.New(xerrors.MalformedContent, "no mwb week documents found in archive")
		}
		for _, doc := range docs {
			assembler.AddWeek(htmlsched.ExtractMWBWeek(doc, profile, key.Year))
		}

	case issuekey.W:
		toc, err := store.WatchtowerTOC()
		if err != nil {
			return err
		}
		if toc == nil {
			return nil
		}
		studies := htmlsched.ExtractWStudies(toc, profile, key.Year, epubArticleFetcher(store), func(reason string) {
			assembler.Skip("htmlsched", reason)
		})
		for _, s := range studies {
			assembler.AddStudy(s)
		}
	}
	return nil
}

// jwpubArticleFetcher adapts a jwpubdoc.Store into an htmlsched.ArticleFetcher:
// the captured TOC link id is the article's numeric MepsDocumentId (spec
// §4.6.3). A non-numeric capture or lookup miss is a fetch failure, which
// the caller treats as a locally-recovered skip.
func jwpubArticleFetcher(store *jwpubdoc.Store) htmlsched.ArticleFetcher {
	return func(capturedID string) (*goquery.Document, bool) {
		id, err := strconv.Atoi(capturedID)
		if err != nil {
			return nil, false
		}
		doc, ok, err := store.WatchtowerArticleByID(id)
		if err != nil || !ok {
			return nil, false
		}
		return doc, true
	}
}

// epubArticleFetcher adapts an epubdoc.Store into an htmlsched.ArticleFetcher:
// the captured TOC link id is the linked article's basename stem (spec
// §4.6.3).
func epubArticleFetcher(store *epubdoc.Store) htmlsched.ArticleFetcher {
	return store.ArticleByBasename
}
