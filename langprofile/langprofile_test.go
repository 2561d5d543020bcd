package langprofile

import "testing"

func TestEnglishMWBDateNormalization(t *testing.T) {
	p, ok := ForLanguage("E")
	if !ok {
		t.Fatal("expected English profile")
	}
	got, ok := p.NormalizeMWBDate("January 1-7", 2024)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "2024/01/01" {
		t.Errorf("weekDate = %q, want %q", got, "2024/01/01")
	}
}

func TestUkrainianMWBDateNormalization(t *testing.T) {
	p, ok := ForLanguage("K")
	if !ok {
		t.Fatal("expected Ukrainian profile")
	}
	got, ok := p.NormalizeMWBDate("1-7 січня", 2024)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "2024/01/01" {
		t.Errorf("weekDate = %q, want %q", got, "2024/01/01")
	}
}

func TestUkrainianFilenameLetterUAliasesK(t *testing.T) {
	pu, ok := ForLanguage("U")
	if !ok {
		t.Fatal("expected 'U' to alias the Ukrainian ('K') profile")
	}
	pk, _ := ForLanguage("K")
	if pu != pk {
		t.Error("'U' and 'K' should resolve to the same *Profile")
	}
}

func TestPolishMWBDateNormalization(t *testing.T) {
	p, ok := ForLanguage("P")
	if !ok {
		t.Fatal("expected Polish profile")
	}
	got, ok := p.NormalizeMWBDate("1-7 stycznia", 2024)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "2024/01/01" {
		t.Errorf("weekDate = %q, want %q", got, "2024/01/01")
	}
}

func TestUnknownLanguageHasNoProfile(t *testing.T) {
	if _, ok := ForLanguage("X"); ok {
		t.Fatal("language X should have no enhanced profile")
	}
}

func TestEnglishMinutesExtraction(t *testing.T) {
	p, _ := ForLanguage("E")
	n, ok := p.ExtractMinutes("10. Apply Yourself (5 min.)")
	if !ok || n != 5 {
		t.Errorf("ExtractMinutes = %d, %v, want 5, true", n, ok)
	}
	if _, ok := p.ExtractMinutes("no duration here"); ok {
		t.Error("expected no match")
	}
}

func TestUkrainianMinutesExtraction(t *testing.T) {
	p, _ := ForLanguage("K")
	n, ok := p.ExtractMinutes("10. Завдання (5 хв.)")
	if !ok || n != 5 {
		t.Errorf("ExtractMinutes = %d, %v, want 5, true", n, ok)
	}
}

func TestEnglishStudyDateNormalization(t *testing.T) {
	p, _ := ForLanguage("E")
	got, ok := p.NormalizeStudyDate("Study Article 5: January 1-7, 2024", 2024)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "2024/01/01" {
		t.Errorf("studyDate = %q, want %q", got, "2024/01/01")
	}
}
