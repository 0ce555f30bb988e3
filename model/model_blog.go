package model

import "time"

type Blog struct {
	ID        int64     `json:"id"        bson:"_id"`
	UserID    int64     `json:"userId"    bson:"user_id"`
	Title     string    `json:"title"     bson:"title"`
	Content   string    `json:"content"   bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
