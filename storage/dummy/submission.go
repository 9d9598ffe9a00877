package dummydb

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core/submission"
)

type submissionRepository struct {
	db *submissionTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) CreateSubmission(_ context.Context, s submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s.ID = primitive.NewObjectID()
	repo.db.table[s.ID.Hex()] = &s
	return s, nil
}

func (repo *submissionRepository) FilterSubmissions(_ context.Context, f submission.QueryFilter) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	matches := make([]submission.Submission, 0)
	for _, s := range repo.db.table {
		if f.StudentEmail != "" && s.StudentEmail != f.StudentEmail {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		matches = append(matches, *s)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].SubmittedAt.After(matches[j].SubmittedAt) })
	return matches, nil
}

func (repo *submissionRepository) GetSubmissionByID(_ context.Context, id string) (submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return submission.Submission{}, submission.ErrNotFound
}

func (repo *submissionRepository) GradeSubmission(_ context.Context, id string, gs submission.GradeSubmission, markedAt time.Time) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s, ok := repo.db.table[id]
	if !ok {
		return submission.Submission{}, submission.ErrNotFound
	}
	s.ObtainedMarks = gs.ObtainedMarks
	s.Feedback = gs.Feedback
	s.MarkedBy = gs.MarkedBy
	s.MarkedAt = &markedAt
	s.Status = submission.StatusCompleted
	return *s, nil
}

func (repo *submissionRepository) DistinctStudents(_ context.Context) ([]string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	seen := make(map[string]struct{})
	students := make([]string, 0)
	for _, s := range repo.db.table {
		if _, ok := seen[s.StudentEmail]; !ok {
			seen[s.StudentEmail] = struct{}{}
			students = append(students, s.StudentEmail)
		}
	}
	return students, nil
}
