package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/models"
)

type CommentService struct {
	commentRepo *data_access.CommentRepository
	movieRepo   *data_access.MovieRepository
}

func NewCommentService(commentRepo *data_access.CommentRepository, movieRepo *data_access.MovieRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
	}
}

// AddComment appends a comment attributed to the authenticated user and
// returns the movie's refreshed comment list, newest first.
func (s *CommentService) AddComment(ctx context.Context, claims *models.UserClaims, movieID, text string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, data_access.ErrNotFound
	}

	if err := s.commentRepo.AddComment(ctx, objID, claims.Name, claims.Email, text, time.Now()); err != nil {
		return nil, err
	}
	return s.movieComments(ctx, movieID)
}

// UpdateComment edits a comment when the caller is its original author.
func (s *CommentService) UpdateComment(ctx context.Context, claims *models.UserClaims, commentID, movieID, text string) ([]models.Comment, error) {
	if err := s.commentRepo.UpdateComment(ctx, commentID, claims.Email, text, time.Now()); err != nil {
		return nil, err
	}
	return s.movieComments(ctx, movieID)
}

// DeleteComment removes a comment when the caller is its original author.
func (s *CommentService) DeleteComment(ctx context.Context, claims *models.UserClaims, commentID, movieID string) ([]models.Comment, error) {
	if err := s.commentRepo.DeleteComment(ctx, commentID, claims.Email); err != nil {
		return nil, err
	}
	return s.movieComments(ctx, movieID)
}

// MostActiveCommenters produces the top-commenters report. Admin gating
// happens at the HTTP boundary.
func (s *CommentService) MostActiveCommenters(ctx context.Context) ([]models.CommenterReport, error) {
	return s.commentRepo.MostActiveCommenters(ctx)
}

func (s *CommentService) movieComments(ctx context.Context, movieID string) ([]models.Comment, error) {
	movie, err := s.movieRepo.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return movie.Comments, nil
}
