package twitter

// defaultBaseURL is the production Twitter API host. Tests override it via
// NewClientWithBaseURL; it is intentionally not runtime configuration.
const defaultBaseURL = "https://api.twitter.com"

// Upstream endpoint paths. The v1.1 single-tweet endpoint is still needed
// because the v2 tweet lookup does not expose a proper full_text field.
const (
	searchRecentPath = "/2/tweets/search/recent"
	tweetsLookupPath = "/2/tweets"
	tweetShowPath    = "/1.1/statuses/show.json"
	userTimelinePath = "/1.1/statuses/user_timeline.json"
)
