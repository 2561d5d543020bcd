package langprofile

import "regexp"

func init() {
	register(&Profile{
		Code: "E",
		months: map[string]int{
			"january": 1, "february": 2, "march": 3, "april": 4,
			"may": 5, "june": 6, "july": 7, "august": 8,
			"september": 9, "october": 10, "november": 11, "december": 12,
		},
		// "January 1-7" -> month="January", day="1"
		mwbDatePattern: regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2})(?:-\d{1,2})?$`),
		mwbMonthGroup:  1,
		mwbDayGroup:    2,

		// "Study Article 5: January 1-7, 2024" -> ordinal=5 month=January day=1 endDay=7 year=2024
		wStudyDatePattern: regexp.MustCompile(`^Study Article (\d+):\s*([A-Za-z]+)\s+(\d{1,2})(?:-(\d{1,2}))?,?\s*(\d{4})$`),
		wOrdinalGroup:     1,
		wMonthGroup:       2,
		wDayGroup:         3,
		wEndDayGroup:      4,
		wYearGroup:        5,

		minutesPattern: regexp.MustCompile(`(\d+)\s*min\.`),
	})
}
