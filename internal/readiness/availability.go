package readiness

// Availability is one member's stated status for one match or proposed date.
type Availability string

const (
	// Available means the member can play.
	Available Availability = "available"
	// NotAvailable means the member cannot play.
	NotAvailable Availability = "not_available"
	// Maybe means the member is unsure.
	Maybe Availability = "maybe"
)

// Valid reports whether the value is one of the known availability states.
func (a Availability) Valid() bool {
	switch a {
	case Available, NotAvailable, Maybe:
		return true
	}
	return false
}

// Member is a roster entry as seen by the engine.
type Member struct {
	ID   string
	Name string
}

// Record is one member's availability answer for one match. At most one
// record exists per (member, match) pair; a new submission replaces the
// prior one in the store.
type Record struct {
	MemberID     string
	MatchID      string
	Availability Availability
}
