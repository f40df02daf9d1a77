package playcricket

// MatchStatus selects which view of the season the matches endpoint returns.
type MatchStatus string

const (
	MatchStatusFixture MatchStatus = "Fixture"
	MatchStatusResult  MatchStatus = "Result"
)

// MatchesQuery is the parameter set for the matches.json endpoint.
type MatchesQuery struct {
	ClubID      string
	TeamID      string
	Season      int
	MatchStatus MatchStatus
}
