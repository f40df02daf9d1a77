package matches

import "strconv"

// The Play-Cricket API is inconsistent about field names across endpoints
// and API versions. Each canonical field is resolved independently from its
// own ordered candidate list, first non-empty value wins. The candidates
// are never merged into one source object.

// extractRecords pulls the match list out of the raw response body,
// preferring the "matches" key and falling back to "data".
func extractRecords(raw map[string]any) []map[string]any {
	list, ok := raw["matches"].([]any)
	if !ok {
		list, _ = raw["data"].([]any)
	}

	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if record, ok := item.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}

// firstString resolves one canonical field from its candidate keys.
// Empty strings and nulls fall through to the next candidate.
func firstString(record map[string]any, keys ...string) *string {
	for _, key := range keys {
		switch v := record[key].(type) {
		case string:
			if v != "" {
				return &v
			}
		case float64:
			s := strconv.FormatFloat(v, 'f', -1, 64)
			return &s
		}
	}
	return nil
}

// homeAway resolves the venue side. An explicit home_away field always
// wins over the is_home flag.
func homeAway(record map[string]any) string {
	if v := firstString(record, "home_away"); v != nil {
		return *v
	}
	if isHome, ok := record["is_home"].(bool); ok && isHome {
		return "Home"
	}
	return "Away"
}

// NormalizeFixtures maps raw upstream records into the canonical fixture shape.
func NormalizeFixtures(raw map[string]any) []FixtureView {
	records := extractRecords(raw)
	items := make([]FixtureView, 0, len(records))
	for _, m := range records {
		items = append(items, FixtureView{
			Date:        firstString(m, "match_date", "date"),
			Opposition:  firstString(m, "opposition_club_name", "opposition_name"),
			HomeAway:    homeAway(m),
			Ground:      firstString(m, "ground_name", "ground"),
			Competition: firstString(m, "competition_name", "competition"),
			StartTime:   firstString(m, "start_time", "start_time_formatted"),
		})
	}
	return items
}

// NormalizeResults maps raw upstream records into the canonical result shape.
func NormalizeResults(raw map[string]any) []ResultView {
	records := extractRecords(raw)
	items := make([]ResultView, 0, len(records))
	for _, m := range records {
		items = append(items, ResultView{
			Date:        firstString(m, "match_date", "date"),
			Opposition:  firstString(m, "opposition_club_name", "opposition_name"),
			HomeAway:    homeAway(m),
			Ground:      firstString(m, "ground_name", "ground"),
			Competition: firstString(m, "competition_name", "competition"),
			Result:      firstString(m, "result", "result_description"),
			Score:       firstString(m, "home_club_scorecard", "score_summary"),
		})
	}
	return items
}
