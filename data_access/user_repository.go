package data_access

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrShtrahman/mongo-M220-project/models"
)

type UserRepository struct {
	users    *mongo.Collection
	sessions *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		users:    db.Collection("users"),
		sessions: db.Collection("sessions"),
	}
}

func (r *UserRepository) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unable to find user: %w", err)
	}
	return &user, nil
}

// AddUser inserts a new user. A collision on the unique email index comes
// back as ErrDuplicateEmail so registration can report a conflict instead
// of a generic failure.
func (r *UserRepository) AddUser(ctx context.Context, user *models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("unable to insert user: %w", err)
	}
	return nil
}

// DeleteUser removes the user record and any session it owns, then verifies
// both are gone.
func (r *UserRepository) DeleteUser(ctx context.Context, email string) error {
	if _, err := r.users.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("unable to delete user: %w", err)
	}
	if _, err := r.sessions.DeleteOne(ctx, bson.M{"user_id": email}); err != nil {
		return fmt.Errorf("unable to delete session: %w", err)
	}

	if _, err := r.GetUser(ctx, email); !errors.Is(err, ErrNotFound) {
		return errors.New("deletion unsuccessful")
	}
	if _, err := r.GetUserSession(ctx, email); !errors.Is(err, ErrNotFound) {
		return errors.New("deletion unsuccessful")
	}
	return nil
}

// UpdatePreferences replaces the preferences field of the user's document.
// Nothing else on the document is touched.
func (r *UserRepository) UpdatePreferences(ctx context.Context, email string, preferences map[string]interface{}) error {
	if preferences == nil {
		preferences = map[string]interface{}{}
	}

	result, err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"preferences": preferences}},
	)
	if err != nil {
		return fmt.Errorf("unable to update preferences: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) CheckAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.GetUser(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// MakeAdmin flips the admin flag on a user record. Only reachable through
// the internal route.
func (r *UserRepository) MakeAdmin(ctx context.Context, email string) error {
	result, err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"isAdmin": true}},
	)
	if err != nil {
		return fmt.Errorf("unable to set admin flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// LoginUser upserts the session record for the email, keeping at most one
// live session per user. Last login wins.
func (r *UserRepository) LoginUser(ctx context.Context, email, jwt string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.sessions.UpdateOne(ctx,
		bson.M{"user_id": email},
		bson.M{"$set": bson.M{"jwt": jwt}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("unable to upsert session: %w", err)
	}
	return nil
}

// LogoutUser removes the session record. Idempotent: logging out without a
// session is not an error.
func (r *UserRepository) LogoutUser(ctx context.Context, email string) error {
	if _, err := r.sessions.DeleteOne(ctx, bson.M{"user_id": email}); err != nil {
		return fmt.Errorf("unable to delete session: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserSession(ctx context.Context, email string) (*models.Session, error) {
	var session models.Session
	err := r.sessions.FindOne(ctx, bson.M{"user_id": email}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unable to find session: %w", err)
	}
	return &session, nil
}
