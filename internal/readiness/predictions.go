package readiness

import "sort"

// Prediction is one member's vote for one alternate match date, carrying the
// member's own availability for that date.
type Prediction struct {
	MemberID      string
	MatchID       string
	PredictedDate string
	Availability  Availability
}

// PredictionSet groups a match's predictions by proposed date. Dates are
// normalized to ISO on insertion so two spellings of the same calendar day
// always land in the same group.
type PredictionSet map[string]map[string]Prediction

// NewPredictionSet builds a set from a flat list of predictions.
func NewPredictionSet(predictions []Prediction) PredictionSet {
	set := PredictionSet{}
	for _, p := range predictions {
		set.Add(p)
	}
	return set
}

// Add inserts the member's vote for the given date, replacing any prior vote
// by the same member for that date.
func (s PredictionSet) Add(p Prediction) {
	date := MustNormalizeDate(p.PredictedDate)
	group, ok := s[date]
	if !ok {
		group = map[string]Prediction{}
		s[date] = group
	}
	p.PredictedDate = date
	group[p.MemberID] = p
}

// RemoveMember withdraws the member from every date group. Empty groups are
// dropped so Len reflects only dates that still have votes.
func (s PredictionSet) RemoveMember(memberID string) {
	for date, group := range s {
		delete(group, memberID)
		if len(group) == 0 {
			delete(s, date)
		}
	}
}

// Len returns the number of date groups with at least one vote.
func (s PredictionSet) Len() int {
	return len(s)
}

// Dates returns the proposed dates in chronological order.
func (s PredictionSet) Dates() []string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Group returns the predictions for one proposed date, ordered by member ID.
func (s PredictionSet) Group(date string) []Prediction {
	group := s[MustNormalizeDate(date)]
	out := make([]Prediction, 0, len(group))
	for _, p := range group {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}

// GroupStatus derives the readiness of one proposed date. A proposal is
// never NotReady: low turnout on a candidate date needs more responses, not
// alarm, so the result is restricted to Ready and Possible.
func (s PredictionSet) GroupStatus(date string, playersNeeded int) Status {
	available, maybe := 0, 0
	for _, p := range s[MustNormalizeDate(date)] {
		switch p.Availability {
		case Available:
			available++
		case Maybe:
			maybe++
		}
	}

	if available >= playersNeeded {
		return StatusReady
	}
	return StatusPossible
}
