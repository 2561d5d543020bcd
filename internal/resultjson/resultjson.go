// Package resultjson renders a schedule.ParsedIssue to the exact wire
// schema of spec §6. Field names are the wire contract and are reproduced
// verbatim; this package carries no parsing semantics of its own.
package resultjson

import (
	"encoding/json"

	"github.com/jwsched/parser/schedule"
)

type wireIssue struct {
	SchemaVersion   string        `json:"schemaVersion"`
	PublicationType string        `json:"publicationType"`
	Language        string        `json:"language"`
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	MWBSchedules    []wireMWBWeek `json:"mwbSchedules,omitempty"`
	WSchedules      []wireWStudy  `json:"wSchedules,omitempty"`
}

type wireMWBWeek struct {
	WeekDate           string          `json:"mwb_week_date,omitempty"`
	WeekDateLocale     string          `json:"mwb_week_date_locale,omitempty"`
	WeeklyBibleReading string          `json:"mwb_weekly_bible_reading,omitempty"`
	SongFirst          *schedule.Field `json:"mwb_song_first,omitempty"`
	TGWTalk            *schedule.Field `json:"mwb_tgw_talk,omitempty"`
	TGWTalkTitle       string          `json:"mwb_tgw_talk_title,omitempty"`
	TGWGemsTitle       string          `json:"mwb_tgw_gems_title,omitempty"`
	TGWBread           *schedule.Field `json:"mwb_tgw_bread,omitempty"`
	TGWBreadTitle      string          `json:"mwb_tgw_bread_title,omitempty"`
	AYFCount           int             `json:"mwb_ayf_count,omitempty"`

	AYFPart1Time  *schedule.Field `json:"mwb_ayf_part1_time,omitempty"`
	AYFPart1Type  *schedule.Field `json:"mwb_ayf_part1_type,omitempty"`
	AYFPart1Title string          `json:"mwb_ayf_part1_title,omitempty"`
	AYFPart2Time  *schedule.Field `json:"mwb_ayf_part2_time,omitempty"`
	AYFPart2Type  *schedule.Field `json:"mwb_ayf_part2_type,omitempty"`
	AYFPart2Title string          `json:"mwb_ayf_part2_title,omitempty"`
	AYFPart3Time  *schedule.Field `json:"mwb_ayf_part3_time,omitempty"`
	AYFPart3Type  *schedule.Field `json:"mwb_ayf_part3_type,omitempty"`
	AYFPart3Title string          `json:"mwb_ayf_part3_title,omitempty"`
	AYFPart4Time  *schedule.Field `json:"mwb_ayf_part4_time,omitempty"`
	AYFPart4Type  *schedule.Field `json:"mwb_ayf_part4_type,omitempty"`
	AYFPart4Title string          `json:"mwb_ayf_part4_title,omitempty"`

	SongMiddle *schedule.Field `json:"mwb_song_middle,omitempty"`
	LCCount    int             `json:"mwb_lc_count,omitempty"`

	LCPart1Time    *schedule.Field `json:"mwb_lc_part1_time,omitempty"`
	LCPart1Content *schedule.Field `json:"mwb_lc_part1_content,omitempty"`
	LCPart1Title   string          `json:"mwb_lc_part1_title,omitempty"`
	LCPart2Time    *schedule.Field `json:"mwb_lc_part2_time,omitempty"`
	LCPart2Content *schedule.Field `json:"mwb_lc_part2_content,omitempty"`
	LCPart2Title   string          `json:"mwb_lc_part2_title,omitempty"`

	LCCBS        *schedule.Field `json:"mwb_lc_cbs,omitempty"`
	LCCBSTitle   string          `json:"mwb_lc_cbs_title,omitempty"`
	SongConclude *schedule.Field `json:"mwb_song_conclude,omitempty"`
}

type wireWStudy struct {
	StudyDate       string          `json:"w_study_date,omitempty"`
	StudyDateLocale string          `json:"w_study_date_locale,omitempty"`
	StudyTitle      string          `json:"w_study_title,omitempty"`
	OpeningSong     *schedule.Field `json:"w_study_opening_song,omitempty"`
	ConcludingSong  *schedule.Field `json:"w_study_concluding_song,omitempty"`
}

// omitAbsent returns nil for an absent Field so "omitempty" drops it, and a
// pointer to f otherwise.
func omitAbsent(f schedule.Field) *schedule.Field {
	if f.IsAbsent() {
		return nil
	}
	return &f
}

func toWireMWBWeek(w schedule.MWBWeek) wireMWBWeek {
	out := wireMWBWeek{
		WeekDate:           w.WeekDate,
		WeekDateLocale:     w.WeekDateLocale,
		WeeklyBibleReading: w.WeeklyBibleReading,
		SongFirst:          omitAbsent(w.SongFirst),
		TGWTalk:            omitAbsent(w.TGWTalk),
		TGWTalkTitle:       w.TGWTalkTitle,
		TGWGemsTitle:       w.TGWGemsTitle,
		TGWBread:           omitAbsent(w.TGWBread),
		TGWBreadTitle:      w.TGWBreadTitle,
		AYFCount:           w.AYFCount,
		SongMiddle:         omitAbsent(w.SongMiddle),
		LCCount:            w.LCCount,
		LCCBS:              omitAbsent(w.LCCBS),
		LCCBSTitle:         w.LCCBSTitle,
		SongConclude:       omitAbsent(w.SongConclude),
	}

	if w.AYFCount >= 1 {
		out.AYFPart1Time, out.AYFPart1Type, out.AYFPart1Title = omitAbsent(w.AYFParts[0].Time), omitAbsent(w.AYFParts[0].Type), w.AYFParts[0].Title
	}
	if w.AYFCount >= 2 {
		out.AYFPart2Time, out.AYFPart2Type, out.AYFPart2Title = omitAbsent(w.AYFParts[1].Time), omitAbsent(w.AYFParts[1].Type), w.AYFParts[1].Title
	}
	if w.AYFCount >= 3 {
		out.AYFPart3Time, out.AYFPart3Type, out.AYFPart3Title = omitAbsent(w.AYFParts[2].Time), omitAbsent(w.AYFParts[2].Type), w.AYFParts[2].Title
	}
	if w.AYFCount >= 4 {
		out.AYFPart4Time, out.AYFPart4Type, out.AYFPart4Title = omitAbsent(w.AYFParts[3].Time), omitAbsent(w.AYFParts[3].Type), w.AYFParts[3].Title
	}

	out.LCPart1Time, out.LCPart1Content, out.LCPart1Title = omitAbsent(w.LCParts[0].Time), omitAbsent(w.LCParts[0].Content), w.LCParts[0].Title
	if w.LCCount == 2 {
		out.LCPart2Time, out.LCPart2Content, out.LCPart2Title = omitAbsent(w.LCParts[1].Time), omitAbsent(w.LCParts[1].Content), w.LCParts[1].Title
	}

	return out
}

func toWireWStudy(s schedule.WStudy) wireWStudy {
	return wireWStudy{
		StudyDate:       s.StudyDate,
		StudyDateLocale: s.StudyDateLocale,
		StudyTitle:      s.StudyTitle,
		OpeningSong:     omitAbsent(s.OpeningSong),
		ConcludingSong:  omitAbsent(s.ConcludingSong),
	}
}

func toWireIssue(issue schedule.ParsedIssue) wireIssue {
	out := wireIssue{
		SchemaVersion:   issue.SchemaVersion,
		PublicationType: string(issue.PublicationType),
		Language:        issue.Language,
		Year:            issue.Year,
		Month:           issue.Month,
	}
	for _, w := range issue.MWBSchedules {
		out.MWBSchedules = append(out.MWBSchedules, toWireMWBWeek(w))
	}
	for _, s := range issue.WSchedules {
		out.WSchedules = append(out.WSchedules, toWireWStudy(s))
	}
	return out
}

// Marshal renders issue to its wire JSON form (spec §6).
func Marshal(issue schedule.ParsedIssue) ([]byte, error) {
	return json.Marshal(toWireIssue(issue))
}

// MarshalIndent renders issue to indented wire JSON, for CLI/human output.
func MarshalIndent(issue schedule.ParsedIssue) ([]byte, error) {
	return json.MarshalIndent(toWireIssue(issue), "", "  ")
}
