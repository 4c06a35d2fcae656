package news

import (
	"context"
	"sort"
	"strings"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

// imageHost prefixes relative crop paths from legacy multimedia lists.
const imageHost = "https://static01.nyt.com/"

// Aggregator merges the fixed facets into one trimmed, date-sorted feed.
type Aggregator struct {
	searcher Searcher
	apiKey   string
	facets   []Facet
}

// NewAggregator builds an aggregator over the given facets; nil means
// DefaultFacets.
func NewAggregator(searcher Searcher, apiKey string, facets []Facet) *Aggregator {
	if len(facets) == 0 {
		facets = DefaultFacets
	}
	return &Aggregator{searcher: searcher, apiKey: apiKey, facets: facets}
}

// Articles runs every facet in order, concatenates the results and returns
// the trimmed feed sorted by publication date, newest first. Any facet
// failing fails the whole aggregation; a partial feed is never served.
func (a *Aggregator) Articles(ctx context.Context) ([]models.Article, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var docs []Doc
	for _, facet := range a.facets {
		res, err := a.searcher.Search(ctx, a.apiKey, facet)
		if err != nil {
			return nil, err
		}
		docs = append(docs, res...)
	}

	// Stable so documents sharing a pub_date keep their concatenation
	// order. Missing dates compare as empty strings and land last.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].PubDate > docs[j].PubDate
	})

	articles := make([]models.Article, 0, len(docs))
	for i := range docs {
		articles = append(articles, trim(&docs[i]))
	}
	return articles, nil
}

// trim prunes a raw search document down to the fields the client renders.
// Every field defaults to the empty string when the document omits it.
func trim(d *Doc) models.Article {
	return models.Article{
		Headline: d.Headline.Main,
		Abstract: d.Abstract,
		URL:      d.WebURL,
		PubDate:  d.PubDate,
		Source:   d.Source,
		ImageURL: resolveImage(d.Multimedia),
	}
}

// resolveImage applies the three-way multimedia policy: named renditions
// prefer default over thumbnail; crop lists pick the largest crop that
// carries both dimensions, prefixing relative paths with the image host.
func resolveImage(m Multimedia) *string {
	switch m.Kind {
	case MultimediaSingle:
		if m.Default.URL != "" {
			return ptr(m.Default.URL)
		}
		if m.Thumbnail.URL != "" {
			return ptr(m.Thumbnail.URL)
		}
	case MultimediaList:
		var best *ImageRef
		for i := range m.List {
			ref := &m.List[i]
			if ref.Width == 0 || ref.Height == 0 {
				continue
			}
			if best == nil || ref.Width*ref.Height > best.Width*best.Height {
				best = ref
			}
		}
		if best != nil {
			u := best.URL
			if !strings.HasPrefix(u, "http") {
				u = imageHost + u
			}
			return &u
		}
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
