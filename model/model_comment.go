package model

import "time"

type Comment struct {
	ID             int64     `json:"id"             bson:"_id"`
	BlogID         int64     `json:"blogId"         bson:"blog_id"`
	UserID         int64     `json:"userId"         bson:"user_id"`
	AuthorUsername string    `json:"authorUsername" bson:"author_username"`
	Content        string    `json:"content"        bson:"content"`
	CreatedAt      time.Time `json:"createdAt"      bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt"      bson:"updated_at"`
}
