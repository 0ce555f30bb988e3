package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like rows are unique per (user_id, blog_id); the index is created at
// startup and the store surfaces duplicate inserts to the caller.
type Like struct {
	ID        bson.ObjectID `json:"-"         bson:"_id,omitempty"`
	UserID    int64         `json:"userId"    bson:"user_id"`
	BlogID    int64         `json:"blogId"    bson:"blog_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
