package dummydb

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core/review"
)

type reviewRepository struct {
	db *reviewTable
}

var _ review.Repository = (*reviewRepository)(nil) // interface compliance check

func NewReviewRepository(db *DB) review.Repository {
	return &reviewRepository{db: db.review}
}

func bookmarkKey(userEmail, assignmentID string) string {
	return userEmail + "|" + assignmentID
}

func (repo *reviewRepository) CreateReview(_ context.Context, r review.Review) (review.Review, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r.ID = primitive.NewObjectID()
	repo.db.reviews = append(repo.db.reviews, &r)
	return r, nil
}

func (repo *reviewRepository) QueryAllReviews(_ context.Context) ([]review.Review, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	reviews := make([]review.Review, 0, len(repo.db.reviews))
	for _, r := range repo.db.reviews {
		reviews = append(reviews, *r)
	}
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (repo *reviewRepository) CreateBookmark(_ context.Context, b review.Bookmark) (review.Bookmark, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	b.ID = primitive.NewObjectID()
	repo.db.bookmarks[bookmarkKey(b.UserEmail, b.AssignmentID)] = &b
	return b, nil
}

func (repo *reviewRepository) BookmarkExists(_ context.Context, userEmail, assignmentID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	_, ok := repo.db.bookmarks[bookmarkKey(userEmail, assignmentID)]
	return ok, nil
}

func (repo *reviewRepository) QueryBookmarksByUser(_ context.Context, userEmail string) ([]review.Bookmark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	bookmarks := make([]review.Bookmark, 0)
	for _, b := range repo.db.bookmarks {
		if b.UserEmail == userEmail {
			bookmarks = append(bookmarks, *b)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt) })
	return bookmarks, nil
}

func (repo *reviewRepository) DeleteBookmark(_ context.Context, userEmail, assignmentID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	delete(repo.db.bookmarks, bookmarkKey(userEmail, assignmentID))
	return nil
}
