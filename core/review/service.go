package review

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/educircle/backend/core"
)

var (
	// errors
	ErrAlreadyBookmarked = errors.New("assignment already bookmarked")
)

type (
	Repository interface {
		CreateReview(ctx context.Context, r Review) (Review, error)
		// QueryAllReviews returns all reviews, newest first.
		QueryAllReviews(ctx context.Context) ([]Review, error)

		CreateBookmark(ctx context.Context, b Bookmark) (Bookmark, error)
		BookmarkExists(ctx context.Context, userEmail, assignmentID string) (bool, error)
		QueryBookmarksByUser(ctx context.Context, userEmail string) ([]Bookmark, error)
		// DeleteBookmark removes the (userEmail, assignmentId) pair; deleting
		// an absent bookmark is not an error.
		DeleteBookmark(ctx context.Context, userEmail, assignmentID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) AddReview(ctx context.Context, identity core.Identity, nr NewReview) (Review, error) {
	r := Review{
		UserEmail: core.CleanString(identity.Email, true /* lower */),
		UserName:  identity.DisplayName(),
		UserPhoto: identity.Photo,
		Message:   nr.Message,
		Rating:    nr.Rating,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateReview(ctx, r)
}

func (svc *Service) QueryReviews(ctx context.Context) ([]Review, error) {
	return svc.repo.QueryAllReviews(ctx)
}

func (svc *Service) AddBookmark(ctx context.Context, identity core.Identity, nb NewBookmark) (Bookmark, error) {
	userEmail := core.CleanString(identity.Email, true /* lower */)

	exists, err := svc.repo.BookmarkExists(ctx, userEmail, nb.AssignmentID)
	if err != nil {
		return Bookmark{}, err
	}
	if exists {
		return Bookmark{}, ErrAlreadyBookmarked
	}

	b := Bookmark{
		UserEmail:    userEmail,
		AssignmentID: nb.AssignmentID,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateBookmark(ctx, b)
}

func (svc *Service) QueryBookmarks(ctx context.Context, identity core.Identity) ([]Bookmark, error) {
	return svc.repo.QueryBookmarksByUser(ctx, core.CleanString(identity.Email, true /* lower */))
}

func (svc *Service) RemoveBookmark(ctx context.Context, identity core.Identity, assignmentID string) error {
	return svc.repo.DeleteBookmark(ctx, core.CleanString(identity.Email, true /* lower */), core.CleanString(assignmentID))
}
