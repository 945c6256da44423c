package readiness

// Summary holds per-category response counts for one match.
type Summary struct {
	Available    int `json:"available"`
	NotAvailable int `json:"not_available"`
	Maybe        int `json:"maybe"`
	// Total is the roster size, not the sum of responses, so callers can
	// compute no-response counts as Total minus the three categories.
	Total int `json:"total"`
}

// NoResponse returns the number of roster members without any answer.
func (s Summary) NoResponse() int {
	return s.Total - s.Available - s.NotAvailable - s.Maybe
}

// Summarize counts availability answers for one match across a roster.
// For each member at most one record is considered; if the store ever holds
// duplicates, the first encountered wins. An unknown match ID yields all-zero
// counts with Total still equal to the roster size.
func Summarize(matchID string, members []Member, records []Record) Summary {
	summary := Summary{Total: len(members)}

	for _, member := range members {
		for _, rec := range records {
			if rec.MatchID != matchID || rec.MemberID != member.ID {
				continue
			}
			switch rec.Availability {
			case Available:
				summary.Available++
			case NotAvailable:
				summary.NotAvailable++
			case Maybe:
				summary.Maybe++
			}
			break
		}
	}

	return summary
}
