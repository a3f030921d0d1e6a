package twitter

import "encoding/json"

// v2Tweet is a tweet as returned by the v2 lookup and search endpoints with
// tweet.fields=created_at,public_metrics,entities.
type v2Tweet struct {
	ID            string           `json:"id"`
	AuthorID      string           `json:"author_id"`
	CreatedAt     *string          `json:"created_at"`
	PublicMetrics *v2PublicMetrics `json:"public_metrics"`
}

// v2PublicMetrics carries the engagement counters of a v2 tweet.
type v2PublicMetrics struct {
	LikeCount    *int `json:"like_count"`
	ReplyCount   *int `json:"reply_count"`
	RetweetCount *int `json:"retweet_count"`
}

// v2User is an expanded author object from includes.users.
type v2User struct {
	ID       *string `json:"id"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

// v2Includes holds the expansion objects of a v2 response.
type v2Includes struct {
	Users []v2User `json:"users"`
}

// v2Response is the success envelope shared by the v2 lookup and search
// endpoints.
type v2Response struct {
	Data     []v2Tweet  `json:"data"`
	Includes v2Includes `json:"includes"`
}

// v1Tweet is a tweet from the v1.1 show endpoint in extended tweet mode.
// When RetweetedStatus is present it is the authoritative source for both
// full_text and entities; the outer tweet's own content fields are ignored
// entirely, not merged field by field.
type v1Tweet struct {
	FullText        *string     `json:"full_text"`
	Entities        *v1Entities `json:"entities"`
	RetweetedStatus *v1Tweet    `json:"retweeted_status"`
}

// v1Entities holds the entity annotations of a v1.1 tweet.
type v1Entities struct {
	Hashtags []v1Hashtag `json:"hashtags"`
}

// v1Hashtag is a single hashtag annotation, without the leading "#".
type v1Hashtag struct {
	Text string `json:"text"`
}

// v1TimelineTweet is a user-timeline entry. Only the numeric id is consumed;
// json.Number keeps its exact decimal representation for the v2 lookup.
type v1TimelineTweet struct {
	ID json.Number `json:"id"`
}
