package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Year        int                `bson:"year,omitempty" json:"year,omitempty"`
	Runtime     int                `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Released    time.Time          `bson:"released,omitempty" json:"released,omitempty"`
	Poster      string             `bson:"poster,omitempty" json:"poster,omitempty"`
	Plot        string             `bson:"plot,omitempty" json:"plot,omitempty"`
	FullPlot    string             `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Rated       string             `bson:"rated,omitempty" json:"rated,omitempty"`
	LastUpdated string             `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`
	Cast        []string           `bson:"cast,omitempty" json:"cast,omitempty"`
	Genres      []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Countries   []string           `bson:"countries,omitempty" json:"countries,omitempty"`
	Languages   []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Directors   []string           `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers     []string           `bson:"writers,omitempty" json:"writers,omitempty"`
	IMDB        IMDB               `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Tomatoes    Tomatoes           `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`
	Metacritic  int                `bson:"metacritic,omitempty" json:"metacritic,omitempty"`
	NumComments int                `bson:"num_mflix_comments,omitempty" json:"num_mflix_comments,omitempty"`

	// Populated by the comments lookup on the movie detail query.
	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`

	// Text-search relevance score, projected only for text queries.
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`
}

type IMDB struct {
	Rating float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  int     `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     int     `bson:"id,omitempty" json:"id,omitempty"`
}

type Tomatoes struct {
	Viewer      ViewerRating `bson:"viewer,omitempty" json:"viewer,omitempty"`
	LastUpdated time.Time    `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

type ViewerRating struct {
	Rating     float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	NumReviews int     `bson:"numReviews,omitempty" json:"numReviews,omitempty"`
	Meter      int     `bson:"meter,omitempty" json:"meter,omitempty"`
}

// MovieTitle is the minimal projection returned by the countries lookup.
type MovieTitle struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}

// Bucket is one histogram bucket from a $bucket stage. ID is either the
// lower boundary of the bucket or the string "other" for out-of-range values.
type Bucket struct {
	ID    interface{} `bson:"_id" json:"_id"`
	Count int         `bson:"count" json:"count"`
}

// FacetedSearchResult merges the facet and counting pipelines: one page of
// movies plus the runtime/rating histograms computed over the full matched
// set, and the unpaginated total.
type FacetedSearchResult struct {
	Movies  []Movie  `bson:"movies" json:"movies"`
	Runtime []Bucket `bson:"runtime" json:"runtime"`
	Rating  []Bucket `bson:"rating" json:"rating"`
	Total   int64    `bson:"-" json:"-"`
}
