package data_access

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"

	"github.com/MrShtrahman/mongo-M220-project/models"
)

type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *MongoDB) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

// AddComment appends a comment attributed to the given user.
func (r *CommentRepository) AddComment(ctx context.Context, movieID primitive.ObjectID, name, email, text string, date time.Time) error {
	comment := models.Comment{
		Name:    name,
		Email:   email,
		MovieID: movieID,
		Text:    text,
		Date:    date,
	}
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("unable to insert comment: %w", err)
	}
	return nil
}

// UpdateComment replaces the text of a comment, but only when the requesting
// email matches the original author. A zero match count means either the
// comment is gone or someone else wrote it; both come back as ErrNotOwner.
func (r *CommentRepository) UpdateComment(ctx context.Context, commentID, email, text string, date time.Time) error {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return ErrNotOwner
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID, "email": email},
		bson.M{"$set": bson.M{"text": text, "date": date}},
	)
	if err != nil {
		return fmt.Errorf("unable to update comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotOwner
	}
	return nil
}

// DeleteComment removes a comment under the same author-match constraint as
// UpdateComment.
func (r *CommentRepository) DeleteComment(ctx context.Context, commentID, email string) error {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return ErrNotOwner
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID, "email": email})
	if err != nil {
		return fmt.Errorf("unable to delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotOwner
	}
	return nil
}

// MostActiveCommenters ranks the top 20 commenters by comment count. Read
// with majority concern so the report reflects acknowledged writes only.
func (r *CommentRepository) MostActiveCommenters(ctx context.Context) ([]models.CommenterReport, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sortByCount", Value: "$email"}},
		{{Key: "$limit", Value: 20}},
	}

	readColl, err := r.collection.Clone(options.Collection().SetReadConcern(readconcern.Majority()))
	if err != nil {
		return nil, fmt.Errorf("unable to clone collection handle: %w", err)
	}

	cursor, err := readColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("unable to issue aggregate command: %w", err)
	}

	report := []models.CommenterReport{}
	if err = cursor.All(ctx, &report); err != nil {
		return nil, fmt.Errorf("unable to read aggregate cursor: %w", err)
	}
	return report, nil
}
