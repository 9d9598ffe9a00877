package dummydb

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

// query returns all assignments, newest first.
func (repo *assignmentRepository) query() []assignment.Assignment {
	assignments := make([]assignment.Assignment, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		assignments = append(assignments, *a)
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].CreatedAt.After(assignments[j].CreatedAt) })
	return assignments
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	a.ID = primitive.NewObjectID()
	repo.db.table[a.ID.Hex()] = &a
	return a, nil
}

func (repo *assignmentRepository) FilterAssignments(_ context.Context, f assignment.QueryFilter) ([]assignment.Assignment, int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	matches := make([]assignment.Assignment, 0)
	for _, a := range repo.query() {
		if f.Difficulty != "" && a.Difficulty != f.Difficulty {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(f.Search)) {
			continue
		}
		matches = append(matches, a)
	}
	total := int64(len(matches))

	start := (f.Page - 1) * f.Limit
	if start > len(matches) {
		start = len(matches)
	}
	end := start + f.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

func (repo *assignmentRepository) SampleAssignments(_ context.Context, n int) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := repo.query()
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if n > len(all) {
		n = len(all)
	}

	sample := make([]assignment.Assignment, 0, n)
	for _, a := range all[:n] {
		sample = append(sample, project(a))
	}
	return sample, nil
}

// project narrows an assignment to its display fields.
func project(a assignment.Assignment) assignment.Assignment {
	return assignment.Assignment{
		ID:         a.ID,
		Title:      a.Title,
		Thumbnail:  a.Thumbnail,
		Marks:      a.Marks,
		Difficulty: a.Difficulty,
	}
}

func (repo *assignmentRepository) GetAssignmentByID(_ context.Context, id string) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpdateAssignment(_ context.Context, id string, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	a, ok := repo.db.table[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	if ua.Title != "" {
		a.Title = ua.Title
	}
	if ua.Thumbnail != "" {
		a.Thumbnail = ua.Thumbnail
	}
	if ua.Description != "" {
		a.Description = ua.Description
	}
	if ua.Marks > 0 {
		a.Marks = ua.Marks
	}
	if ua.Difficulty != "" {
		a.Difficulty = ua.Difficulty
	}
	return *a, nil
}

func (repo *assignmentRepository) DeleteAssignment(_ context.Context, id string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return 0, nil
	}
	delete(repo.db.table, id)
	return 1, nil
}

func (repo *assignmentRepository) CountAssignments(_ context.Context) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return int64(len(repo.db.table)), nil
}

func (repo *assignmentRepository) DistinctCreators(_ context.Context) ([]string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	seen := make(map[string]struct{})
	creators := make([]string, 0)
	for _, a := range repo.db.table {
		if _, ok := seen[a.CreatorEmail]; !ok {
			seen[a.CreatorEmail] = struct{}{}
			creators = append(creators, a.CreatorEmail)
		}
	}
	return creators, nil
}
