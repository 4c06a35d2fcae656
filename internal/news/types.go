package news

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Facet is one fixed (query, filter) pair submitted to the article search
// API.
type Facet struct {
	Query  string
	Filter string
}

// DefaultFacets are the two hometown queries every aggregation runs, in
// the order their results are concatenated.
var DefaultFacets = []Facet{
	{Query: "sacramento", Filter: `timesTag.location:"California"`},
	{Query: "davis", Filter: `timesTag.organization:"University of California, Davis"`},
}

// Doc is one untrimmed article-search result document.
type Doc struct {
	Headline   Headline   `json:"headline"`
	Abstract   string     `json:"abstract"`
	WebURL     string     `json:"web_url"`
	PubDate    string     `json:"pub_date"`
	Source     string     `json:"source"`
	Multimedia Multimedia `json:"multimedia"`
}

// Headline carries the nested headline object; only the main field is
// used.
type Headline struct {
	Main string `json:"main"`
}

// ImageRef is one image descriptor inside a multimedia payload.
type ImageRef struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MultimediaKind tags the shape a multimedia payload arrived in.
type MultimediaKind int

const (
	MultimediaAbsent MultimediaKind = iota
	MultimediaSingle
	MultimediaList
)

// Multimedia is the API's duck-typed multimedia field. Current responses
// carry an object with named renditions, older ones a list of crops, and
// many articles none at all. The shape is resolved once during decoding
// instead of being re-inspected downstream.
type Multimedia struct {
	Kind      MultimediaKind
	Default   ImageRef
	Thumbnail ImageRef
	List      []ImageRef
}

// UnmarshalJSON accepts an object, a list, null, or nothing. An empty list
// counts as absent.
func (m *Multimedia) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		m.Kind = MultimediaAbsent
		return nil
	}
	switch trimmed[0] {
	case '{':
		var single struct {
			Default   *ImageRef `json:"default"`
			Thumbnail *ImageRef `json:"thumbnail"`
		}
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		m.Kind = MultimediaSingle
		if single.Default != nil {
			m.Default = *single.Default
		}
		if single.Thumbnail != nil {
			m.Thumbnail = *single.Thumbnail
		}
		return nil
	case '[':
		var list []ImageRef
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		if len(list) == 0 {
			m.Kind = MultimediaAbsent
			return nil
		}
		m.Kind = MultimediaList
		m.List = list
		return nil
	}
	return fmt.Errorf("unexpected multimedia shape: %.32s", trimmed)
}
