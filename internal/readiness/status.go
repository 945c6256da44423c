package readiness

// Status is the derived readiness of a match. The four values form a closed
// set; DeriveStatus encodes their precedence explicitly.
type Status string

const (
	// StatusReady means enough members answered Available.
	StatusReady Status = "ready"
	// StatusPossible means the match could happen but needs attention:
	// either Maybe answers are needed to reach the threshold, pending date
	// predictions await a decision, or the match is too far out to judge.
	StatusPossible Status = "possible"
	// StatusNotReady means the match is close and the threshold is not met.
	StatusNotReady Status = "not_ready"
	// StatusPast means the match date is before today.
	StatusPast Status = "past"
)

// Config holds tunables for status derivation.
type Config struct {
	// WindowDays is the look-ahead window within which an understaffed
	// match is flagged NotReady. Beyond it low response counts are
	// expected rather than alarming, and the match stays Possible.
	WindowDays int
}

// DefaultConfig returns the default derivation configuration.
func DefaultConfig() Config {
	return Config{WindowDays: 14}
}

// StatusInput bundles everything DeriveStatus reads. All collections are
// passed explicitly; the engine holds no state of its own.
type StatusInput struct {
	MatchID string
	// MatchDate and Today may be in ISO or dd.mm.yyyy form; both are
	// normalized before comparison.
	MatchDate string
	Today     string

	Members       []Member
	Records       []Record
	PlayersNeeded int

	// Predictions holds the match's pending alternate-date proposals.
	// A non-empty set forces Possible regardless of availability.
	Predictions PredictionSet
}

// DeriveStatus computes a match's readiness. Rules are evaluated in order,
// first match wins:
//
//  1. match date before today               -> Past
//  2. pending date predictions              -> Possible
//  3. available >= needed                   -> Ready
//  4. available+maybe >= needed             -> Possible
//  5. match within the look-ahead window    -> NotReady
//  6. otherwise                             -> Possible
func DeriveStatus(in StatusInput, cfg Config) Status {
	matchDate := MustNormalizeDate(in.MatchDate)
	today := MustNormalizeDate(in.Today)

	if Before(matchDate, today) {
		return StatusPast
	}

	if in.Predictions.Len() > 0 {
		return StatusPossible
	}

	summary := Summarize(in.MatchID, in.Members, in.Records)

	if summary.Available >= in.PlayersNeeded {
		return StatusReady
	}
	if summary.Available+summary.Maybe >= in.PlayersNeeded {
		return StatusPossible
	}

	windowEnd, err := AddDays(today, cfg.WindowDays)
	if err == nil && !Before(windowEnd, matchDate) {
		return StatusNotReady
	}

	return StatusPossible
}
