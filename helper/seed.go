// Package helper loads movie records from an IMDB-style CSV export so a
// fresh database can be seeded without the full sample dataset.
package helper

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MrShtrahman/mongo-M220-project/models"
)

// LoadMoviesFromCSV reads a CSV with at least Title, Genre, Description,
// Actors, Year and Runtime (Minutes) columns and maps each row onto a Movie.
func LoadMoviesFromCSV(path string) ([]models.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for i, column := range header {
		cols[column] = i
	}
	if _, ok := cols["Title"]; !ok {
		return nil, fmt.Errorf("title column not found in %s", path)
	}

	var movies []models.Movie
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		movie := models.Movie{
			Title:      field(row, cols, "Title"),
			Plot:       field(row, cols, "Description"),
			Genres:     splitList(field(row, cols, "Genre")),
			Cast:       splitList(field(row, cols, "Actors")),
			Year:       atoi(field(row, cols, "Year")),
			Runtime:    atoi(field(row, cols, "Runtime (Minutes)")),
			Metacritic: atoi(field(row, cols, "Metascore")),
			Type:       "movie",
		}
		if director := field(row, cols, "Director"); director != "" {
			movie.Directors = []string{director}
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func atoi(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
