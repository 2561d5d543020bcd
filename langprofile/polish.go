package langprofile

import "regexp"

func init() {
	register(&Profile{
		Code: "P",
		months: map[string]int{
			// nominative
			"styczeń": 1, "luty": 2, "marzec": 3, "kwiecień": 4,
			"maj": 5, "czerwiec": 6, "lipiec": 7, "sierpień": 8,
			"wrzesień": 9, "październik": 10, "listopad": 11, "grudzień": 12,
			// genitive (used in "1-7 stycznia" style dates)
			"stycznia": 1, "lutego": 2, "marca": 3, "kwietnia": 4,
			"maja": 5, "czerwca": 6, "lipca": 7, "sierpnia": 8,
			"września": 9, "października": 10, "listopada": 11, "grudnia": 12,
		},
		// "1-7 stycznia" -> day="1", endDay="7", month="stycznia"
		mwbDatePattern: regexp.MustCompile(`^(\d{1,2})(?:-(\d{1,2}))?\s+(\p{L}+)$`),
		mwbDayGroup:    1,
		mwbMonthGroup:  3,

		// "Artykuł do studium 5: 1-7 stycznia 2024"
		wStudyDatePattern: regexp.MustCompile(`^Artykuł do studium (\d+):\s*(\d{1,2})(?:-(\d{1,2}))?\s+(\p{L}+)\s+(\d{4})$`),
		wOrdinalGroup:     1,
		wDayGroup:         2,
		wEndDayGroup:      3,
		wMonthGroup:       4,
		wYearGroup:        5,

		minutesPattern: regexp.MustCompile(`(\d+)\s*min\.`),
	})
}
