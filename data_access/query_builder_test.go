package data_access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIntentFromParams_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cast   []string
		genres []string
		want   SearchIntent
	}{
		{
			name: "nothing set means browse all",
			want: nil,
		},
		{
			name: "text alone",
			text: "salad days",
			want: TextIntent{Text: "salad days"},
		},
		{
			name: "cast alone",
			cast: []string{"Tom Hanks"},
			want: CastIntent{Cast: []string{"Tom Hanks"}},
		},
		{
			name:   "genre alone",
			genres: []string{"Comedy"},
			want:   GenreIntent{Genres: []string{"Comedy"}},
		},
		{
			name:   "text beats cast and genre",
			text:   "salad days",
			cast:   []string{"Tom Hanks"},
			genres: []string{"Comedy"},
			want:   TextIntent{Text: "salad days"},
		},
		{
			name:   "cast beats genre",
			cast:   []string{"Tom Hanks"},
			genres: []string{"Comedy"},
			want:   CastIntent{Cast: []string{"Tom Hanks"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntentFromParams(tt.text, tt.cast, tt.genres)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildQueryParams_Text(t *testing.T) {
	params := BuildQueryParams(TextIntent{Text: "fast cars"})

	require.Contains(t, params.Query, "$text")
	assert.Equal(t, bson.M{"$search": "fast cars"}, params.Query["$text"])

	// Relevance sort and score projection ride along with text search.
	require.Len(t, params.Sort, 1)
	assert.Equal(t, "score", params.Sort[0].Key)
	assert.Equal(t, bson.M{"$meta": "textScore"}, params.Sort[0].Value)
	assert.Equal(t, bson.M{"$meta": "textScore"}, params.Project["score"])
}

func TestBuildQueryParams_Cast(t *testing.T) {
	cast := []string{"Tom Hanks", "Meg Ryan"}
	params := BuildQueryParams(CastIntent{Cast: cast})

	assert.Equal(t, bson.M{"cast": bson.M{"$in": cast}}, params.Query)
	assert.Equal(t, defaultSort, params.Sort)
	assert.Empty(t, params.Project)
}

func TestBuildQueryParams_Genre(t *testing.T) {
	genres := []string{"Western"}
	params := BuildQueryParams(GenreIntent{Genres: genres})

	assert.Equal(t, bson.M{"genres": bson.M{"$in": genres}}, params.Query)
	assert.Equal(t, defaultSort, params.Sort)
	assert.Empty(t, params.Project)
}

func TestBuildQueryParams_NoIntent(t *testing.T) {
	params := BuildQueryParams(nil)

	assert.Empty(t, params.Query)
	assert.Equal(t, defaultSort, params.Sort)
	assert.Empty(t, params.Project)
}

func TestBuildQueryParams_PopularitySortIsDescending(t *testing.T) {
	params := BuildQueryParams(CastIntent{Cast: []string{"Tom Hanks"}})

	require.Len(t, params.Sort, 1)
	assert.Equal(t, "tomatoes.viewer.numReviews", params.Sort[0].Key)
	assert.Equal(t, -1, params.Sort[0].Value)
}

func TestIntentFilters(t *testing.T) {
	assert.Equal(t,
		map[string]interface{}{"text": "heist"},
		TextIntent{Text: "heist"}.Filters())
	assert.Equal(t,
		map[string]interface{}{"cast": []string{"Rita Hayworth"}},
		CastIntent{Cast: []string{"Rita Hayworth"}}.Filters())
	assert.Equal(t,
		map[string]interface{}{"genre": []string{"Film-Noir"}},
		GenreIntent{Genres: []string{"Film-Noir"}}.Filters())
}
