package twitter

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"tweet-facade/internal/domain"
)

// v2TweetFields and v2Expansions are the field sets the v2 endpoints must be
// asked for; the parameter values are part of the upstream contract.
const (
	v2TweetFields = "created_at,public_metrics,entities"
	v2Expansions  = "author_id"
)

// TweetContent is the content view of one tweet: hashtags and full text from
// the v1.1 lookup, with the retweet-source override already applied.
type TweetContent struct {
	Hashtags []string
	Text     *string
}

// TweetContent fetches the content view of a single tweet via the v1.1 show
// endpoint in extended tweet mode.
func (c *Client) TweetContent(ctx context.Context, authorization, id string) (TweetContent, error) {
	params := url.Values{}
	params.Set("id", id)
	params.Set("tweet_mode", "extended")

	body, err := c.get(ctx, tweetShowPath, authorization, params)
	if err != nil {
		return TweetContent{}, err
	}
	if err := checkV1(body); err != nil {
		return TweetContent{}, err
	}

	var tweet v1Tweet
	if err := json.Unmarshal(body, &tweet); err != nil {
		return TweetContent{}, errUpstreamDecode(err)
	}
	return contentOf(&tweet), nil
}

// TweetsBatch fetches the given tweet ids via the v2 lookup endpoint and
// enriches every returned tweet with its content view. The full list is
// returned in upstream order without truncation; bounding results is the
// caller's concern.
func (c *Client) TweetsBatch(ctx context.Context, authorization string, ids []string) ([]domain.Tweet, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("tweet.fields", v2TweetFields)
	params.Set("expansions", v2Expansions)

	body, err := c.get(ctx, tweetsLookupPath, authorization, params)
	if err != nil {
		return nil, err
	}
	if err := checkV2(body); err != nil {
		return nil, err
	}

	var result v2Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errUpstreamDecode(err)
	}
	return c.enrichAll(ctx, authorization, result)
}

// SearchHashtag fetches recent tweets matching "#hashtag", enriched with
// their content views and truncated to limit. The upstream enforces a floor
// on the requested page size, so up to max(floor, limit) tweets are fetched
// and the surplus is cut client-side rather than re-queried.
func (c *Client) SearchHashtag(ctx context.Context, authorization, hashtag string, limit int) ([]domain.Tweet, error) {
	params := url.Values{}
	params.Set("query", "#"+hashtag)
	params.Set("tweet.fields", v2TweetFields)
	params.Set("expansions", v2Expansions)
	params.Set("max_results", strconv.Itoa(max(c.cfg.MinSearchResults, limit)))

	body, err := c.get(ctx, searchRecentPath, authorization, params)
	if err != nil {
		return nil, err
	}
	if err := checkV2(body); err != nil {
		return nil, err
	}

	var result v2Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errUpstreamDecode(err)
	}

	tweets, err := c.enrichAll(ctx, authorization, result)
	if err != nil {
		return nil, err
	}
	return truncate(tweets, limit), nil
}

// UserTweets fetches a user's recent tweets: the v1.1 timeline supplies the
// id list, which is resolved through TweetsBatch and truncated to limit. The
// batch itself is unbounded, so every timeline id is fully enriched even when
// the timeline returns more than limit entries.
func (c *Client) UserTweets(ctx context.Context, authorization, username string, limit int) ([]domain.Tweet, error) {
	params := url.Values{}
	params.Set("screen_name", username)
	params.Set("trim_user", "true")
	params.Set("count", strconv.Itoa(limit))

	body, err := c.get(ctx, userTimelinePath, authorization, params)
	if err != nil {
		return nil, err
	}
	if err := checkV1(body); err != nil {
		return nil, err
	}

	var timeline []v1TimelineTweet
	if err := json.Unmarshal(body, &timeline); err != nil {
		return nil, errUpstreamDecode(err)
	}

	ids := make([]string, len(timeline))
	for i, entry := range timeline {
		ids[i] = entry.ID.String()
	}

	tweets, err := c.TweetsBatch(ctx, authorization, ids)
	if err != nil {
		return nil, err
	}
	return truncate(tweets, limit), nil
}

// enrichAll merges the metrics view of every tweet in a v2 response with a
// concurrently fetched content view. All enrichment calls within one batch
// run in parallel and join fail-fast: the first classified error cancels the
// remaining calls and fails the batch as a whole. Results keep upstream
// response order via their indexed slot, not completion order.
func (c *Client) enrichAll(ctx context.Context, authorization string, result v2Response) ([]domain.Tweet, error) {
	users := usersIndexOf(result.Includes)
	tweets := make([]domain.Tweet, len(result.Data))

	group, ctx := errgroup.WithContext(ctx)
	for i, tweet := range result.Data {
		i, tweet := i, tweet
		group.Go(func() error {
			content, err := c.TweetContent(ctx, authorization, tweet.ID)
			if err != nil {
				return err
			}
			merged := metricsViewOf(tweet, users, c.cfg.TimezoneOffsetMinutes)
			merged.Hashtags = content.Hashtags
			merged.Text = content.Text
			tweets[i] = merged
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return tweets, nil
}

func truncate(tweets []domain.Tweet, limit int) []domain.Tweet {
	if len(tweets) > limit {
		return tweets[:limit]
	}
	return tweets
}
