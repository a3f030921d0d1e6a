package twitter

import (
	"time"

	"tweet-facade/internal/domain"
)

// dateLayout renders a 12-hour clock with zero-padded hour and day, a 3-letter
// month and a 4-digit year, e.g. "11:48 PM - 05 Oct 2011".
const dateLayout = "03:04 PM - 02 Jan 2006"

// The transformers below are pure and total: they never fail, and every output
// field independently degrades to nil (or an empty slice) when its source
// data is absent.

// hashtagsOf renders entity hashtags as "#text", preserving upstream order.
func hashtagsOf(entities *v1Entities) []string {
	if entities == nil {
		return []string{}
	}
	tags := make([]string, 0, len(entities.Hashtags))
	for _, h := range entities.Hashtags {
		tags = append(tags, "#"+h.Text)
	}
	return tags
}

// contentOf extracts the content view of a v1.1 tweet. A retweet substitutes
// its retweeted_status wholesale as the source for both hashtags and text.
func contentOf(tweet *v1Tweet) TweetContent {
	source := tweet
	if tweet.RetweetedStatus != nil {
		source = tweet.RetweetedStatus
	}
	return TweetContent{
		Hashtags: hashtagsOf(source.Entities),
		Text:     source.FullText,
	}
}

// dateOf formats a v2 created_at timestamp at a fixed offset from UTC given
// in minutes. The offset sign follows the upstream service's convention of
// treating negative configured offsets as their positive counterpart.
func dateOf(createdAt *string, offsetMinutes int) *string {
	if createdAt == nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *createdAt)
	if err != nil {
		return nil
	}
	if offsetMinutes < 0 {
		offsetMinutes = -offsetMinutes
	}
	zone := time.FixedZone("", offsetMinutes*60)
	formatted := parsed.In(zone).Format(dateLayout)
	return &formatted
}

// usersIndexOf builds the ephemeral author_id lookup for one response batch.
// Users without an id cannot be referenced and are skipped.
func usersIndexOf(includes v2Includes) map[string]v2User {
	users := make(map[string]v2User, len(includes.Users))
	for _, u := range includes.Users {
		if u.ID != nil {
			users[*u.ID] = u
		}
	}
	return users
}

// accountOf maps an expanded author onto the output account. The href is
// derived as "/{username}" only when a non-empty username is present.
func accountOf(user v2User) domain.Account {
	account := domain.Account{
		ID:       user.ID,
		Fullname: user.Name,
	}
	if user.Username != nil && *user.Username != "" {
		href := "/" + *user.Username
		account.Href = &href
	}
	return account
}

// metricsViewOf combines author, date and engagement counters of one v2 tweet
// into a normalized tweet. The content view fields are left empty for the
// caller to merge in; the two key sets are disjoint.
func metricsViewOf(tweet v2Tweet, users map[string]v2User, offsetMinutes int) domain.Tweet {
	out := domain.Tweet{
		Account:  accountOf(users[tweet.AuthorID]),
		Date:     dateOf(tweet.CreatedAt, offsetMinutes),
		Hashtags: []string{},
	}
	if tweet.PublicMetrics != nil {
		out.Likes = tweet.PublicMetrics.LikeCount
		out.Replies = tweet.PublicMetrics.ReplyCount
		out.Retweets = tweet.PublicMetrics.RetweetCount
	}
	return out
}
