package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	MovieID primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

// CommenterReport is one row of the most-active-commenters aggregation.
type CommenterReport struct {
	Email string `bson:"_id" json:"_id"`
	Count int    `bson:"count" json:"count"`
}
