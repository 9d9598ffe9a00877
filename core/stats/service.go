package stats

import (
	"context"

	"github.com/pkg/errors"

	"github.com/educircle/backend/core/assignment"
	"github.com/educircle/backend/core/submission"
)

// partnersCount is a marketing figure for the dashboard; it is not backed by
// a store.
const partnersCount = 12

// Result holds the dashboard counts, each computed independently.
type Result struct {
	Students    int   `json:"students"`
	Instructors int   `json:"instructors"`
	Assignments int64 `json:"assignments"`
	Partners    int   `json:"partners"`
}

type Service struct {
	assignmentRepo assignment.Repository
	submissionRepo submission.Repository
}

func NewService(assignmentRepo assignment.Repository, submissionRepo submission.Repository) *Service {
	return &Service{assignmentRepo: assignmentRepo, submissionRepo: submissionRepo}
}

// Compute gathers all aggregates; a failure in any step fails the whole
// computation (no partial results).
func (svc *Service) Compute(ctx context.Context) (Result, error) {
	students, err := svc.submissionRepo.DistinctStudents(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "counting distinct students")
	}

	instructors, err := svc.assignmentRepo.DistinctCreators(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "counting distinct instructors")
	}

	total, err := svc.assignmentRepo.CountAssignments(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "counting assignments")
	}

	return Result{
		Students:    len(students),
		Instructors: len(instructors),
		Assignments: total,
		Partners:    partnersCount,
	}, nil
}
