package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core"
)

// Statuses; a submission starts out pending and becomes completed once graded.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Submission is a student's attempt at an Assignment, gradable by a peer
// other than the submitter. The assignment reference is not enforced by the
// store; deleting an Assignment does not remove its Submissions.
type Submission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID  string             `bson:"assignmentId" json:"assignmentId"`
	StudentEmail  string             `bson:"studentEmail" json:"studentEmail"`
	Status        string             `bson:"status" json:"status"`
	ObtainedMarks int                `bson:"obtainedMarks,omitempty" json:"obtainedMarks,omitempty"`
	Feedback      string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	MarkedBy      string             `bson:"markedBy,omitempty" json:"markedBy,omitempty"`
	MarkedAt      *time.Time         `bson:"markedAt,omitempty" json:"markedAt,omitempty"` // UTC
	SubmittedAt   time.Time          `bson:"submittedAt" json:"submittedAt"`               // UTC
}

// NewSubmission contains information needed to create a new Submission.
type NewSubmission struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required,email"`
}

func (ns *NewSubmission) Validate() error {
	ns.AssignmentID = core.CleanString(ns.AssignmentID)
	ns.StudentEmail = core.CleanString(ns.StudentEmail, true /* lower */)
	return core.Validate.Struct(ns)
}

// GradeSubmission is a peer's grade for a Submission.
type GradeSubmission struct {
	ObtainedMarks int    `json:"obtainedMarks" validate:"gte=0"`
	Feedback      string `json:"feedback"`
	MarkedBy      string `json:"markedBy" validate:"required,email"`
}

func (gs *GradeSubmission) Validate() error {
	gs.Feedback = core.CleanString(gs.Feedback)
	gs.MarkedBy = core.CleanString(gs.MarkedBy, true /* lower */)
	return core.Validate.Struct(gs)
}

type QueryFilter struct {
	StudentEmail string `query:"email"`
	Status       string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.StudentEmail = core.CleanString(qf.StudentEmail, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}
