package parse

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/jwsched/parser/internal/xerrors"
	"github.com/jwsched/parser/schedule"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %q: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const mwbWeekFixture = `<html><body>
<h1>January 1-7</h1>
<h2>Genesis 1-3</h2>
<div class="pGroup"><ul>
  <li><p>SONG 1</p></li>
  <li><p>Opening Comments</p></li>
  <li><p>Looking at the text (10 min.)</p></li>
  <li><p>SONG 150</p></li>
</ul></div>
</body></html>`

func TestParseMWBEPUBScenario1(t *testing.T) {
	data := buildZip(t, map[string]string{"OEBPS/01.xhtml": mwbWeekFixture})

	issue, err := Parse(context.Background(), "mwb_E_202401.epub", data, DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if issue.PublicationType != schedule.MWB {
		t.Fatalf("PublicationType = %v", issue.PublicationType)
	}
	if len(issue.MWBSchedules) != 1 {
		t.Fatalf("len(MWBSchedules) = %d, want 1", len(issue.MWBSchedules))
	}
	week := issue.MWBSchedules[0]
	if week.WeekDate != "2024/01/01" {
		t.Errorf("WeekDate = %q, want 2024/01/01", week.WeekDate)
	}
	if week.SongFirst != schedule.NumField(1) {
		t.Errorf("SongFirst = %+v, want 1", week.SongFirst)
	}
}

func TestParseMWBEPUBNoValidDocumentsIsMalformed(t *testing.T) {
	data := buildZip(t, map[string]string{"OEBPS/01.xhtml": `<html><body><p>nothing here</p></body></html>`})

	_, err := Parse(context.Background(), "mwb_E_202401.epub", data, DefaultConfig())
	if !xerrors.Is(err, xerrors.MalformedContent) {
		t.Fatalf("err = %v, want MALFORMED_CONTENT", err)
	}
}

func TestParseRejectsInvalidFilename(t *testing.T) {
	_, err := Parse(context.Background(), "not-a-publication.txt", nil, DefaultConfig())
	if !xerrors.Is(err, xerrors.InvalidFilename) {
		t.Fatalf("err = %v, want INVALID_FILENAME", err)
	}
}

func TestParseRejectsOversizedArchive(t *testing.T) {
	data := buildZip(t, map[string]string{"OEBPS/01.xhtml": mwbWeekFixture})
	cfg := DefaultConfig()
	cfg.MaxTotalBytes = 4

	_, err := Parse(context.Background(), "mwb_E_202401.epub", data, cfg)
	if !xerrors.Is(err, xerrors.FileTooLarge) {
		t.Fatalf("err = %v, want FILE_TOO_LARGE", err)
	}
}
