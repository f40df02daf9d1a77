package matches

// MatchService decides, per request, whether enough configuration exists to
// call Play-Cricket, and returns either live normalized data or the static
// samples.
type MatchService interface {
	Fixtures(opts FeedOptions) (FixtureFeed, error)
	Results(opts FeedOptions) (ResultFeed, error)
}
