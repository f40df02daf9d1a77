package matches

import "time"

func ptr[T any](v T) *T { return &v }

func dayOffset(days int) *string {
	d := time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
	return &d
}

// SampleFixtures is the deterministic fixture set served when no
// Play-Cricket credentials are configured.
func SampleFixtures() []FixtureView {
	return []FixtureView{
		{
			Date:        dayOffset(2),
			Opposition:  ptr("Greenfield CC"),
			HomeAway:    "Home",
			Ground:      ptr("Sankalp Oval"),
			Competition: ptr("Friendly T20"),
			StartTime:   ptr("18:00"),
		},
		{
			Date:        dayOffset(9),
			Opposition:  ptr("Riverside CC"),
			HomeAway:    "Away",
			Ground:      ptr("Riverside Park"),
			Competition: ptr("League"),
			StartTime:   ptr("12:30"),
		},
	}
}

// SampleResults is the deterministic result set served when no
// Play-Cricket credentials are configured.
func SampleResults() []ResultView {
	return []ResultView{
		{
			Date:        dayOffset(-3),
			Opposition:  ptr("Harbor CC"),
			HomeAway:    "Away",
			Ground:      ptr("Harbor Field"),
			Competition: ptr("League"),
			Result:      ptr("Sankalp won by 5 wickets"),
			Score:       ptr("Harbor 148/8 (40) — Sankalp 149/5 (37.2)"),
		},
		{
			Date:        dayOffset(-10),
			Opposition:  ptr("Hilltop CC"),
			HomeAway:    "Home",
			Ground:      ptr("Sankalp Oval"),
			Competition: ptr("Friendly T20"),
			Result:      ptr("Sankalp lost by 7 runs"),
			Score:       ptr("Hilltop 162/6 (20) — Sankalp 155/7 (20)"),
		},
	}
}
