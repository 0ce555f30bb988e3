package services

import (
	"context"
	"sort"
	"time"

	"blog-service/internal/apperr"
	"blog-service/model"
)

// In-memory fakes for the store and collaborator ports. Not safe for
// concurrent use; tests are sequential.

type fakeAuth struct {
	identity *model.Identity
}

func (f *fakeAuth) Resolve(_ context.Context, authHeader string) (*model.Identity, error) {
	if authHeader == "" || f.identity == nil {
		return nil, apperr.Forbidden("authentication required")
	}
	return f.identity, nil
}

type fakeFollowers struct {
	follows  map[int64]bool
	followed []int64
	err      error
	calls    int
}

func (f *fakeFollowers) IsFollowedByMe(_ context.Context, _ string, userID int64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.follows[userID], nil
}

func (f *fakeFollowers) FollowedByMe(_ context.Context, _ string) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.followed, nil
}

type fakeBlogStore struct {
	blogs  map[int64]*model.Blog
	nextID int64
	gets   int
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[int64]*model.Blog{}}
}

func (f *fakeBlogStore) Create(_ context.Context, blog *model.Blog) error {
	f.nextID++
	blog.ID = f.nextID
	clone := *blog
	f.blogs[blog.ID] = &clone
	return nil
}

func (f *fakeBlogStore) GetByID(_ context.Context, id int64) (*model.Blog, error) {
	f.gets++
	blog, ok := f.blogs[id]
	if !ok {
		return nil, nil
	}
	clone := *blog
	return &clone, nil
}

func (f *fakeBlogStore) ListAll(_ context.Context) ([]model.Blog, error) {
	return f.sorted(func(*model.Blog) bool { return true }), nil
}

func (f *fakeBlogStore) ListByAuthors(_ context.Context, authorIDs []int64, skip, limit int64) ([]model.Blog, error) {
	in := map[int64]bool{}
	for _, id := range authorIDs {
		in[id] = true
	}
	all := f.sorted(func(b *model.Blog) bool { return in[b.UserID] })

	if skip >= int64(len(all)) {
		return []model.Blog{}, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeBlogStore) sorted(keep func(*model.Blog) bool) []model.Blog {
	out := []model.Blog{}
	for _, b := range f.blogs {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type fakeCommentStore struct {
	comments map[int64]*model.Comment
	nextID   int64
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[int64]*model.Comment{}}
}

func (f *fakeCommentStore) Create(_ context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeCommentStore) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *comment
	return &clone, nil
}

func (f *fakeCommentStore) ListByBlog(_ context.Context, blogID int64) ([]model.Comment, error) {
	out := []model.Comment{}
	for _, c := range f.comments {
		if c.BlogID == blogID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentStore) UpdateContent(_ context.Context, id int64, content string) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	clone := *comment
	return &clone, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.comments[id]; !ok {
		return false, nil
	}
	delete(f.comments, id)
	return true, nil
}

type likeKey struct {
	userID int64
	blogID int64
}

type fakeLikeStore struct {
	likes map[likeKey]*model.Like
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{likes: map[likeKey]*model.Like{}}
}

func (f *fakeLikeStore) Insert(_ context.Context, like *model.Like) (bool, error) {
	key := likeKey{like.UserID, like.BlogID}
	if _, ok := f.likes[key]; ok {
		return true, nil
	}
	clone := *like
	f.likes[key] = &clone
	return false, nil
}

func (f *fakeLikeStore) Find(_ context.Context, userID, blogID int64) (*model.Like, error) {
	like, ok := f.likes[likeKey{userID, blogID}]
	if !ok {
		return nil, nil
	}
	clone := *like
	return &clone, nil
}

func (f *fakeLikeStore) Delete(_ context.Context, userID, blogID int64) (bool, error) {
	key := likeKey{userID, blogID}
	if _, ok := f.likes[key]; !ok {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeLikeStore) CountByBlog(_ context.Context, blogID int64) (int64, error) {
	var n int64
	for key := range f.likes {
		if key.blogID == blogID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikeStore) ListByBlog(_ context.Context, blogID int64) ([]model.Like, error) {
	out := []model.Like{}
	for key, like := range f.likes {
		if key.blogID == blogID {
			out = append(out, *like)
		}
	}
	return out, nil
}
