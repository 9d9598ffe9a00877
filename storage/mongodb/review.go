package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/educircle/backend/core/review"
)

type reviewRepository struct {
	reviews   *mongo.Collection
	bookmarks *mongo.Collection
}

var _ review.Repository = (*reviewRepository)(nil) // interface compliance check

func NewReviewRepository(db *mongo.Database) review.Repository {
	return &reviewRepository{
		reviews:   db.Collection(reviewsCollection),
		bookmarks: db.Collection(bookmarksCollection),
	}
}

func (repo *reviewRepository) CreateReview(ctx context.Context, r review.Review) (review.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.reviews.InsertOne(ctx, r)
	if err != nil {
		return review.Review{}, wrapErr(err, "inserting review")
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return r, nil
}

func (repo *reviewRepository) QueryAllReviews(ctx context.Context) ([]review.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := repo.reviews.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapErr(err, "querying reviews")
	}

	reviews := make([]review.Review, 0)
	if err = cur.All(ctx, &reviews); err != nil {
		return nil, wrapErr(err, "decoding reviews")
	}
	return reviews, nil
}

func (repo *reviewRepository) CreateBookmark(ctx context.Context, b review.Bookmark) (review.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.bookmarks.InsertOne(ctx, b)
	if err != nil {
		return review.Bookmark{}, wrapErr(err, "inserting bookmark")
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

func (repo *reviewRepository) BookmarkExists(ctx context.Context, userEmail, assignmentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := repo.bookmarks.CountDocuments(ctx, bson.M{"userEmail": userEmail, "assignmentId": assignmentID})
	if err != nil {
		return false, wrapErr(err, "checking bookmark")
	}
	return count > 0, nil
}

func (repo *reviewRepository) QueryBookmarksByUser(ctx context.Context, userEmail string) ([]review.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := repo.bookmarks.Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, wrapErr(err, "querying bookmarks")
	}

	bookmarks := make([]review.Bookmark, 0)
	if err = cur.All(ctx, &bookmarks); err != nil {
		return nil, wrapErr(err, "decoding bookmarks")
	}
	return bookmarks, nil
}

func (repo *reviewRepository) DeleteBookmark(ctx context.Context, userEmail, assignmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.bookmarks.DeleteOne(ctx, bson.M{"userEmail": userEmail, "assignmentId": assignmentID}); err != nil {
		return wrapErr(err, "deleting bookmark")
	}
	return nil
}
