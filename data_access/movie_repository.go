package data_access

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrShtrahman/mongo-M220-project/models"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{
		collection: db.Collection("movies"),
	}
}

// GetMovies runs a paginated find for the given intent and returns the page
// of movies plus the total match count. Counting is done only on the first
// page; later pages report 0 to spare a count query per request, so callers
// must treat a zero total on page > 0 as unknown rather than authoritative.
func (r *MovieRepository) GetMovies(ctx context.Context, intent SearchIntent, page, perPage int) ([]models.Movie, int64, error) {
	params := BuildQueryParams(intent)

	opts := options.Find().
		SetProjection(params.Project).
		SetSort(params.Sort).
		SetSkip(int64(page * perPage)).
		SetLimit(int64(perPage))

	cursor, err := r.collection.Find(ctx, params.Query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to issue find command: %w", err)
	}

	movies := []models.Movie{}
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, 0, fmt.Errorf("unable to read find cursor: %w", err)
	}

	var total int64
	if page == 0 {
		total, err = r.collection.CountDocuments(ctx, params.Query)
		if err != nil {
			return nil, 0, fmt.Errorf("unable to count documents: %w", err)
		}
	}

	return movies, total, nil
}

// GetMoviesByCountry returns id/title pairs for movies whose country list
// intersects the given countries.
func (r *MovieRepository) GetMoviesByCountry(ctx context.Context, countries []string) ([]models.MovieTitle, error) {
	opts := options.Find().SetProjection(bson.M{"title": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"countries": bson.M{"$in": countries}}, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to issue find command: %w", err)
	}

	titles := []models.MovieTitle{}
	if err = cursor.All(ctx, &titles); err != nil {
		return nil, fmt.Errorf("unable to read find cursor: %w", err)
	}
	return titles, nil
}

// GetMovieByID fetches a single movie joined with its comments, newest
// first. A malformed id is reported as ErrNotFound, same as a missing one.
func (r *MovieRepository) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: objID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "comments"},
			{Key: "let", Value: bson.D{{Key: "id", Value: "$_id"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$movie_id", "$$id"}},
					}},
				}}},
				{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
			}},
			{Key: "as", Value: "comments"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("unable to issue aggregate command: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("unable to read aggregate cursor: %w", err)
		}
		return nil, ErrNotFound
	}

	var movie models.Movie
	if err := cursor.Decode(&movie); err != nil {
		return nil, fmt.Errorf("unable to decode movie: %w", err)
	}
	return &movie, nil
}

// FacetedSearch matches movies by cast, sorts them by popularity, and
// computes three views over the same matched set in one pass: a runtime
// histogram, a rating histogram, and the requested page of movies. The
// total match count comes from a separate unpaginated pipeline.
func (r *MovieRepository) FacetedSearch(ctx context.Context, cast []string, page, perPage int) (*models.FacetedSearchResult, error) {
	if len(cast) == 0 {
		return nil, ErrInvalidFilter
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{
		{Key: "cast", Value: bson.D{{Key: "$in", Value: cast}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{
		{Key: "tomatoes.viewer.numReviews", Value: -1},
	}}}
	// Histograms cover the whole matched set; only the movies view is paged.
	facetStage := bson.D{{Key: "$facet", Value: bson.D{
		{Key: "runtime", Value: mongo.Pipeline{bucketStage("$runtime", []int{0, 60, 90, 120, 180})}},
		{Key: "rating", Value: mongo.Pipeline{bucketStage("$metacritic", []int{0, 50, 70, 90, 100})}},
		{Key: "movies", Value: mongo.Pipeline{
			{{Key: "$skip", Value: page * perPage}},
			{{Key: "$limit", Value: perPage}},
		}},
	}}}

	queryPipeline := mongo.Pipeline{matchStage, sortStage, facetStage}

	cursor, err := r.collection.Aggregate(ctx, queryPipeline)
	if err != nil {
		// The facet stage blows the per-stage memory limit when the matched
		// set is too big; surface that as a capacity failure.
		return nil, fmt.Errorf("%w: %v", ErrResultTooLarge, err)
	}
	defer cursor.Close(ctx)

	var result models.FacetedSearchResult
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("unable to decode faceted search result: %w", err)
		}
	} else if err := cursor.Err(); err != nil {
		// Server-side pipeline failures can also surface on iteration.
		return nil, fmt.Errorf("%w: %v", ErrResultTooLarge, err)
	}

	countingPipeline := mongo.Pipeline{matchStage, sortStage,
		{{Key: "$count", Value: "count"}},
	}
	countCursor, err := r.collection.Aggregate(ctx, countingPipeline)
	if err != nil {
		return nil, fmt.Errorf("unable to count faceted search matches: %w", err)
	}
	defer countCursor.Close(ctx)

	if countCursor.Next(ctx) {
		var count struct {
			Count int64 `bson:"count"`
		}
		if err := countCursor.Decode(&count); err != nil {
			return nil, fmt.Errorf("unable to decode match count: %w", err)
		}
		result.Total = count.Count
	}

	return &result, nil
}

// bucketStage builds a $bucket stage over the given field with an "other"
// bucket for values outside the boundaries.
func bucketStage(groupBy string, boundaries []int) bson.D {
	bounds := bson.A{}
	for _, b := range boundaries {
		bounds = append(bounds, b)
	}
	return bson.D{{Key: "$bucket", Value: bson.D{
		{Key: "groupBy", Value: groupBy},
		{Key: "boundaries", Value: bounds},
		{Key: "default", Value: "other"},
		{Key: "output", Value: bson.D{
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}},
	}}}
}
