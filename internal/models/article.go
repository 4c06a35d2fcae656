package models

// Article is the trimmed view of one article-search result. Articles are
// derived per request and never persisted; the URL doubles as the join key
// for comments.
type Article struct {
	Headline string  `json:"headline"`
	Abstract string  `json:"abstract"`
	URL      string  `json:"url"`
	PubDate  string  `json:"pub_date"`
	Source   string  `json:"source"`
	ImageURL *string `json:"image_url"`
}
