package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

// ParsePage reads a page number, falling back to 0 on anything unparseable
// or negative.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// moviePageResponse is the envelope shared by the browse and search routes.
func moviePageResponse(c *gin.Context, page *services.MoviePage, intent data_access.SearchIntent) {
	filters := map[string]interface{}{}
	if intent != nil {
		filters = intent.Filters()
	}
	c.JSON(http.StatusOK, gin.H{
		"movies":           page.Movies,
		"page":             page.Page,
		"filters":          filters,
		"entries_per_page": services.MoviesPerPage,
		"total_results":    page.TotalResults,
	})
}

// GetMovies serves the first page of the whole catalog, most popular first.
func (ctrl *MovieController) GetMovies(c *gin.Context) {
	page, err := ctrl.movieService.GetMovies(c.Request.Context(), nil, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	moviePageResponse(c, page, nil)
}

// SearchMovies serves a filtered page. Exactly one filter applies: text
// beats cast beats genre.
func (ctrl *MovieController) SearchMovies(c *gin.Context) {
	intent := data_access.IntentFromParams(
		c.Query("text"),
		c.QueryArray("cast"),
		c.QueryArray("genre"),
	)
	pageNum := ParsePage(c.Query("page"))

	page, err := ctrl.movieService.GetMovies(c.Request.Context(), intent, pageNum)
	if err != nil {
		respondError(c, err)
		return
	}
	moviePageResponse(c, page, intent)
}

// GetMoviesByCountry returns id/title pairs for the given countries,
// defaulting to USA when none are supplied.
func (ctrl *MovieController) GetMoviesByCountry(c *gin.Context) {
	countries := c.QueryArray("countries")
	if len(countries) == 0 {
		countries = []string{"USA"}
	}

	titles, err := ctrl.movieService.GetMoviesByCountry(c.Request.Context(), countries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

// GetMovieByID serves a single movie with its comments, newest first.
func (ctrl *MovieController) GetMovieByID(c *gin.Context) {
	movie, err := ctrl.movieService.GetMovieByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movie": movie})
}

// FacetedSearch serves a page of cast-filtered movies along with runtime
// and rating histograms over the full matched set.
func (ctrl *MovieController) FacetedSearch(c *gin.Context) {
	cast := c.QueryArray("cast")
	pageNum := ParsePage(c.Query("page"))

	result, err := ctrl.movieService.FacetedSearch(c.Request.Context(), cast, pageNum)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": result.Movies,
		"facets": gin.H{
			"runtime": result.Runtime,
			"rating":  result.Rating,
		},
		"page":             pageNum,
		"filters":          gin.H{"cast": cast},
		"entries_per_page": services.MoviesPerPage,
		"total_results":    result.Total,
	})
}
