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

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection(database.CollLikes)}
}

// Insert adds a like, reporting dup=true when the unique
// (user_id, blog_id) index rejects the row.
func (r *LikeRepository) Insert(ctx context.Context, like *model.Like) (bool, error) {
	res, err := r.col.InsertOne(ctx, like)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		like.ID = oid
	}
	return false, nil
}

func (r *LikeRepository) Find(ctx context.Context, userID, blogID int64) (*model.Like, error) {
	var like model.Like
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "blog_id": blogID}).Decode(&like)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, blogID int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "blog_id": blogID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"blog_id": blogID})
}

func (r *LikeRepository) ListByBlog(ctx context.Context, blogID int64) ([]model.Like, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"blog_id": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	likes := []model.Like{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}
