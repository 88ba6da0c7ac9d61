package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Rank,Title,Genre,Description,Director,Actors,Year,Runtime (Minutes),Rating,Votes,Metascore
1,Guardians of the Galaxy,"Action,Adventure,Sci-Fi",A group of criminals...,James Gunn,"Chris Pratt, Vin Diesel, Bradley Cooper",2014,121,8.1,757074,76
2,Sing,"Animation,Comedy,Family",A koala named Buster...,Christophe Lourdelet,"Matthew McConaughey, Reese Witherspoon",2016,108,7.2,60545,59
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestLoadMoviesFromCSV(t *testing.T) {
	movies, err := LoadMoviesFromCSV(writeSample(t))
	require.NoError(t, err)
	require.Len(t, movies, 2)

	first := movies[0]
	assert.Equal(t, "Guardians of the Galaxy", first.Title)
	assert.Equal(t, 2014, first.Year)
	assert.Equal(t, 121, first.Runtime)
	assert.Equal(t, 76, first.Metacritic)
	assert.Equal(t, []string{"Action", "Adventure", "Sci-Fi"}, first.Genres)
	assert.Equal(t, []string{"Chris Pratt", "Vin Diesel", "Bradley Cooper"}, first.Cast)
	assert.Equal(t, []string{"James Gunn"}, first.Directors)
	assert.Equal(t, "movie", first.Type)
}

func TestLoadMoviesFromCSV_MissingTitleColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Rank,Name\n1,Nope\n"), 0o644))

	_, err := LoadMoviesFromCSV(path)
	assert.Error(t, err)
}

func TestLoadMoviesFromCSV_NoSuchFile(t *testing.T) {
	_, err := LoadMoviesFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
