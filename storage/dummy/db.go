package dummydb

import (
	"sync"

	"github.com/educircle/backend/core/assignment"
	"github.com/educircle/backend/core/review"
	"github.com/educircle/backend/core/submission"
)

type (
	DB struct {
		assignment *assignmentTable
		submission *submissionTable
		review     *reviewTable
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
	}

	submissionTable struct {
		sync.RWMutex
		table map[string]*submission.Submission
	}

	reviewTable struct {
		sync.RWMutex
		reviews   []*review.Review
		bookmarks map[string]*review.Bookmark // keyed by userEmail + "|" + assignmentId
	}
)

func Open() (*DB, error) {
	db := &DB{
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		submission: &submissionTable{table: make(map[string]*submission.Submission)},
		review:     &reviewTable{bookmarks: make(map[string]*review.Bookmark)},
	}
	return db, nil
}
