package langprofile

import "regexp"

func init() {
	register(&Profile{
		Code: "K", // filenames use "U"; register adds the "U" alias.
		months: map[string]int{
			// nominative
			"січень": 1, "лютий": 2, "березень": 3, "квітень": 4,
			"травень": 5, "червень": 6, "липень": 7, "серпень": 8,
			"вересень": 9, "жовтень": 10, "листопад": 11, "грудень": 12,
			// genitive (used in "1-7 січня" style dates)
			"січня": 1, "лютого": 2, "березня": 3, "квітня": 4,
			"травня": 5, "червня": 6, "липня": 7, "серпня": 8,
			"вересня": 9, "жовтня": 10, "листопада": 11, "грудня": 12,
		},
		// "1-7 січня" -> day="1", endDay="7", month="січня"
		mwbDatePattern: regexp.MustCompile(`^(\d{1,2})(?:-(\d{1,2}))?\s+(\p{L}+)$`),
		mwbDayGroup:    1,
		mwbMonthGroup:  3,

		// "Стаття для вивчення 5: 1-7 січня 2024"
		wStudyDatePattern: regexp.MustCompile(`^Стаття для вивчення (\d+):\s*(\d{1,2})(?:-(\d{1,2}))?\s+(\p{L}+)\s+(\d{4})$`),
		wOrdinalGroup:     1,
		wDayGroup:         2,
		wEndDayGroup:      3,
		wMonthGroup:       4,
		wYearGroup:        5,

		minutesPattern: regexp.MustCompile(`(\d+)\s*хв\.`),
	})
}
