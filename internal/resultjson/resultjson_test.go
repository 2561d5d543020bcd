package resultjson

import (
	"encoding/json"
	"testing"

	"github.com/jwsched/parser/schedule"
)

func TestMarshalOmitsAbsentFields(t *testing.T) {
	issue := schedule.ParsedIssue{
		SchemaVersion:   schedule.SchemaVersion,
		PublicationType: schedule.MWB,
		Language:        "E",
		Year:            2024,
		Month:           1,
		MWBSchedules: []schedule.MWBWeek{
			{
				WeekDate:  "2024/01/01",
				SongFirst: schedule.NumField(1),
				AYFCount:  1,
				LCCount:   1,
			},
		},
	}

	b, err := Marshal(issue)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out["publicationType"] != "MWB" {
		t.Errorf("publicationType = %v", out["publicationType"])
	}
	if _, present := out["wSchedules"]; present {
		t.Error("expected wSchedules to be omitted")
	}

	weeks, _ := out["mwbSchedules"].([]any)
	if len(weeks) != 1 {
		t.Fatalf("len(mwbSchedules) = %d, want 1", len(weeks))
	}
	week := weeks[0].(map[string]any)
	if _, present := week["mwb_tgw_talk"]; present {
		t.Error("expected absent mwb_tgw_talk to be omitted")
	}
	songFirst := week["mwb_song_first"].(map[string]any)
	if songFirst["tag"] != "num" || songFirst["value"] != float64(1) {
		t.Errorf("mwb_song_first = %v", songFirst)
	}
}
