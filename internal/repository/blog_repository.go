package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blog-service/database"
	"blog-service/model"
)

type BlogRepository struct {
	col *mongo.Collection
	seq *SequenceRepository
}

func NewBlogRepository(db *mongo.Database, seq *SequenceRepository) *BlogRepository {
	return &BlogRepository{col: db.Collection(database.CollBlogs), seq: seq}
}

func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	id, err := r.seq.Next(ctx, database.CollBlogs)
	if err != nil {
		return err
	}
	blog.ID = id

	_, err = r.col.InsertOne(ctx, blog)
	return err
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	var blog model.Blog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) ListAll(ctx context.Context) ([]model.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []model.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListByAuthors pages through blogs by the given authors, newest first.
// Ids are allocated monotonically, so sorting on _id keeps adjacent
// pages consistent.
func (r *BlogRepository) ListByAuthors(ctx context.Context, authorIDs []int64, skip, limit int64) ([]model.Blog, error) {
	if len(authorIDs) == 0 {
		return []model.Blog{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{"user_id": bson.M{"$in": authorIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []model.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
