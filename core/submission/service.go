package submission

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/educircle/backend/core"
)

var (
	// errors
	ErrNotFound    = errors.New("submission not found")
	ErrSelfGrading = errors.New("students may not grade their own submission")
)

type (
	Repository interface {
		CreateSubmission(ctx context.Context, s Submission) (Submission, error)
		// FilterSubmissions applies AND operation on available QueryFilter fields.
		FilterSubmissions(ctx context.Context, filter QueryFilter) ([]Submission, error)
		GetSubmissionByID(ctx context.Context, id string) (Submission, error)
		// GradeSubmission writes the grading fields and the completed status in
		// a single update.
		GradeSubmission(ctx context.Context, id string, gs GradeSubmission, markedAt time.Time) (Submission, error)
		DistinctStudents(ctx context.Context) ([]string, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) Create(ctx context.Context, ns NewSubmission) (Submission, error) {
	s := Submission{
		AssignmentID: ns.AssignmentID,
		StudentEmail: ns.StudentEmail,
		Status:       StatusPending,
		SubmittedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateSubmission(ctx, s)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Submission, error) {
	filter.Clean()
	return svc.repo.FilterSubmissions(ctx, filter)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Submission, error) {
	return svc.repo.GetSubmissionByID(ctx, id)
}

// Grade transitions a Submission from pending to completed. Re-grading
// overwrites the previous grade; concurrent grades are last-write-wins.
func (svc *Service) Grade(ctx context.Context, id string, gs GradeSubmission) (Submission, error) {
	s, err := svc.repo.GetSubmissionByID(ctx, id)
	if err != nil {
		return Submission{}, err
	}
	if gs.MarkedBy == s.StudentEmail {
		return Submission{}, ErrSelfGrading
	}

	graded, err := svc.repo.GradeSubmission(ctx, id, gs, time.Now().UTC())
	if err != nil {
		return Submission{}, err
	}
	svc.sendGradedEmail(graded)
	return graded, nil
}

func (svc *Service) sendGradedEmail(s Submission) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: s.StudentEmail}},
		Subject: "Your submission has been graded",
		BodyStr: fmt.Sprintf(
			"Your submission for assignment %s was graded by %s.\r\n"+
				"Obtained marks: %d\r\nFeedback: %s\r\n",
			s.AssignmentID, s.MarkedBy, s.ObtainedMarks, s.Feedback,
		),
	})
}
