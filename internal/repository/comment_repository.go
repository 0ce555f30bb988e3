package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blog-service/database"
	"blog-service/model"
)

type CommentRepository struct {
	col *mongo.Collection
	seq *SequenceRepository
}

func NewCommentRepository(db *mongo.Database, seq *SequenceRepository) *CommentRepository {
	return &CommentRepository{col: db.Collection(database.CollComments), seq: seq}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	id, err := r.seq.Next(ctx, database.CollComments)
	if err != nil {
		return err
	}
	comment.ID = id

	_, err = r.col.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByBlog(ctx context.Context, blogID int64) ([]model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"blog_id": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []model.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateContent sets the comment's content and returns the updated
// document, or nil when the comment no longer exists.
func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}}

	var comment model.Comment
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
