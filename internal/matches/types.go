package matches

// Source tags where a feed came from.
type Source string

const (
	SourceSample      Source = "sample"
	SourcePlayCricket Source = "play-cricket"
)

// DefaultLimit caps a feed when the caller supplies no usable limit.
// There is no upper clamp.
const DefaultLimit = 10

// FixtureView is the canonical shape of an upcoming match, regardless of
// upstream field naming. Unresolvable fields are null.
type FixtureView struct {
	Date        *string `json:"date"`
	Opposition  *string `json:"opposition"`
	HomeAway    string  `json:"home_away"`
	Ground      *string `json:"ground"`
	Competition *string `json:"competition"`
	StartTime   *string `json:"start_time"`
}

// ResultView is the canonical shape of a played match.
type ResultView struct {
	Date        *string `json:"date"`
	Opposition  *string `json:"opposition"`
	HomeAway    string  `json:"home_away"`
	Ground      *string `json:"ground"`
	Competition *string `json:"competition"`
	Result      *string `json:"result"`
	Score       *string `json:"score"`
}

// FixtureFeed is the tagged response for the fixtures endpoint.
type FixtureFeed struct {
	Source Source        `json:"source"`
	Items  []FixtureView `json:"items"`
}

// ResultFeed is the tagged response for the results endpoint.
type ResultFeed struct {
	Source Source       `json:"source"`
	Items  []ResultView `json:"items"`
}

// FeedOptions carries the caller-supplied query parameters. Zero values
// mean "use the default" (limit 10, current season).
type FeedOptions struct {
	Limit  int
	Season int
}
