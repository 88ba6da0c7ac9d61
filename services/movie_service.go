package services

import (
	"context"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/models"
)

// MoviesPerPage is the fixed page size for every movie listing.
const MoviesPerPage = 20

type MovieService struct {
	movieRepo *data_access.MovieRepository
}

func NewMovieService(movieRepo *data_access.MovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

// MoviePage is one page of search results. TotalResults is only computed on
// page 0; later pages carry 0, meaning unknown.
type MoviePage struct {
	Movies       []models.Movie
	Page         int
	TotalResults int64
}

func (s *MovieService) GetMovies(ctx context.Context, intent data_access.SearchIntent, page int) (*MoviePage, error) {
	if page < 0 {
		page = 0
	}
	movies, total, err := s.movieRepo.GetMovies(ctx, intent, page, MoviesPerPage)
	if err != nil {
		return nil, err
	}
	return &MoviePage{Movies: movies, Page: page, TotalResults: total}, nil
}

func (s *MovieService) GetMoviesByCountry(ctx context.Context, countries []string) ([]models.MovieTitle, error) {
	return s.movieRepo.GetMoviesByCountry(ctx, countries)
}

func (s *MovieService) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	return s.movieRepo.GetMovieByID(ctx, id)
}

func (s *MovieService) FacetedSearch(ctx context.Context, cast []string, page int) (*models.FacetedSearchResult, error) {
	if page < 0 {
		page = 0
	}
	return s.movieRepo.FacetedSearch(ctx, cast, page, MoviesPerPage)
}
