package playcricket

// PlayCricketClient defines the interface for the ECB Play-Cricket API.
// The parsed response body is returned unshaped; normalization into the
// canonical views happens in the matches package.
type PlayCricketClient interface {
	GetMatches(apiKey string, q MatchesQuery) (map[string]any, error)
}
