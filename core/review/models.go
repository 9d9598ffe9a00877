package review

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core"
)

// Review is a user's appraisal of the platform. Reviews are append-only;
// there is no update or delete path.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	UserName  string             `bson:"userName" json:"userName"`
	UserPhoto string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"` // UTC
}

// NewReview contains information needed to post a Review; the reviewer's
// identity comes from the authenticated context.
type NewReview struct {
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

func (nr *NewReview) Validate() error {
	nr.Message = core.CleanString(nr.Message)
	return core.Validate.Struct(nr)
}

// Bookmark marks an assignment saved by a user; at most one may exist per
// (userEmail, assignmentId) pair.
type Bookmark struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	AssignmentID string             `bson:"assignmentId" json:"assignmentId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"` // UTC
}

type NewBookmark struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
}

func (nb *NewBookmark) Validate() error {
	nb.AssignmentID = core.CleanString(nb.AssignmentID)
	return core.Validate.Struct(nb)
}
