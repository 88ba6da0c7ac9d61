package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	Name        string                 `bson:"name" json:"name"`
	Email       string                 `bson:"email" json:"email"`
	Password    string                 `bson:"password" json:"-"`
	Preferences map[string]interface{} `bson:"preferences,omitempty" json:"preferences"`
	IsAdmin     bool                   `bson:"isAdmin,omitempty" json:"-"`
}

// Session holds the most recent token issued to a user. One session per
// email; a new login overwrites the previous record.
type Session struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID string             `bson:"user_id" json:"user_id"`
	JWT    string             `bson:"jwt" json:"jwt"`
}
