// Package domain defines the normalized tweet entities served by tweet-facade.
package domain

// Account identifies the author of a normalized tweet. Fields are pointers so
// that data absent upstream serializes as JSON null rather than a zero value.
type Account struct {
	ID       *string `json:"id"`
	Fullname *string `json:"fullname"`
	Href     *string `json:"href"`
}

// Tweet is the uniform tweet representation merged from both upstream API
// versions: account, date and engagement metrics come from the v2 lookup
// (the metrics view), hashtags and text from the v1 full-text lookup (the
// content view). Every field independently degrades to null/empty when its
// source data is missing.
type Tweet struct {
	Account  Account  `json:"account"`
	Date     *string  `json:"date"`
	Likes    *int     `json:"likes"`
	Replies  *int     `json:"replies"`
	Retweets *int     `json:"retweets"`
	Hashtags []string `json:"hashtags"`
	Text     *string  `json:"text"`
}
