package data_access

import (
	"go.mongodb.org/mongo-driver/bson"
)

// SearchIntent is what a search request is asking for. Exactly one concrete
// intent is active per request; a nil SearchIntent means browse everything.
type SearchIntent interface {
	// Filters describes the intent in the response's "filters" field.
	Filters() map[string]interface{}
}

// TextIntent matches against the full-text index and sorts by relevance.
type TextIntent struct {
	Text string
}

func (i TextIntent) Filters() map[string]interface{} {
	return map[string]interface{}{"text": i.Text}
}

// CastIntent matches movies whose cast intersects the given names.
type CastIntent struct {
	Cast []string
}

func (i CastIntent) Filters() map[string]interface{} {
	return map[string]interface{}{"cast": i.Cast}
}

// GenreIntent matches movies whose genres intersect the given list.
type GenreIntent struct {
	Genres []string
}

func (i GenreIntent) Filters() map[string]interface{} {
	return map[string]interface{}{"genre": i.Genres}
}

// IntentFromParams picks the single active intent from the raw search
// parameters. Precedence is text, then cast, then genre; anything after the
// first non-empty parameter is ignored. Returns nil when nothing is set.
func IntentFromParams(text string, cast, genres []string) SearchIntent {
	switch {
	case text != "":
		return TextIntent{Text: text}
	case len(cast) > 0:
		return CastIntent{Cast: cast}
	case len(genres) > 0:
		return GenreIntent{Genres: genres}
	default:
		return nil
	}
}

// QueryParams is a query, sort, and projection bundle ready to hand to a
// find call.
type QueryParams struct {
	Query   bson.M
	Sort    bson.D
	Project bson.M
}

// Popularity ordering used whenever a search has no relevance score.
var defaultSort = bson.D{{Key: "tomatoes.viewer.numReviews", Value: -1}}

// BuildQueryParams translates an intent into its query/sort/projection
// triple. Pure and deterministic; no I/O.
func BuildQueryParams(intent SearchIntent) QueryParams {
	switch i := intent.(type) {
	case TextIntent:
		return textSearchQuery(i.Text)
	case CastIntent:
		return castSearchQuery(i.Cast)
	case GenreIntent:
		return genreSearchQuery(i.Genres)
	default:
		return QueryParams{Query: bson.M{}, Sort: defaultSort, Project: bson.M{}}
	}
}

func textSearchQuery(text string) QueryParams {
	metaScore := bson.M{"$meta": "textScore"}
	return QueryParams{
		Query:   bson.M{"$text": bson.M{"$search": text}},
		Sort:    bson.D{{Key: "score", Value: metaScore}},
		Project: bson.M{"score": metaScore},
	}
}

func castSearchQuery(cast []string) QueryParams {
	return QueryParams{
		Query:   bson.M{"cast": bson.M{"$in": cast}},
		Sort:    defaultSort,
		Project: bson.M{},
	}
}

func genreSearchQuery(genres []string) QueryParams {
	return QueryParams{
		Query:   bson.M{"genres": bson.M{"$in": genres}},
		Sort:    defaultSort,
		Project: bson.M{},
	}
}
