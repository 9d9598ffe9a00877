package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/educircle/backend/core/assignment"
)

type assignmentRepository struct {
	col *mongo.Collection
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *mongo.Database) assignment.Repository {
	return &assignmentRepository{col: db.Collection(assignmentsCollection)}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.col.InsertOne(ctx, a)
	if err != nil {
		return assignment.Assignment{}, wrapErr(err, "inserting assignment")
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (repo *assignmentRepository) FilterAssignments(ctx context.Context, f assignment.QueryFilter) ([]assignment.Assignment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if f.Search != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}

	total, err := repo.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrapErr(err, "counting assignments")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
	cur, err := repo.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, wrapErr(err, "querying assignments")
	}

	assignments := make([]assignment.Assignment, 0, f.Limit)
	if err = cur.All(ctx, &assignments); err != nil {
		return nil, 0, wrapErr(err, "decoding assignments")
	}
	return assignments, total, nil
}

func (repo *assignmentRepository) SampleAssignments(ctx context.Context, n int) ([]assignment.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
		{{Key: "$project", Value: bson.M{"title": 1, "thumbnail": 1, "marks": 1, "difficulty": 1}}},
	}
	cur, err := repo.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr(err, "sampling assignments")
	}

	assignments := make([]assignment.Assignment, 0, n)
	if err = cur.All(ctx, &assignments); err != nil {
		return nil, wrapErr(err, "decoding assignments")
	}
	return assignments, nil
}

func (repo *assignmentRepository) GetAssignmentByID(ctx context.Context, id string) (assignment.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return assignment.Assignment{}, assignment.ErrNotFound
	}

	var a assignment.Assignment
	if err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, wrapErr(err, "finding assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) UpdateAssignment(ctx context.Context, id string, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return assignment.Assignment{}, assignment.ErrNotFound
	}

	set := bson.M{}
	if ua.Title != "" {
		set["title"] = ua.Title
	}
	if ua.Thumbnail != "" {
		set["thumbnail"] = ua.Thumbnail
	}
	if ua.Description != "" {
		set["description"] = ua.Description
	}
	if ua.Marks > 0 {
		set["marks"] = ua.Marks
	}
	if ua.Difficulty != "" {
		set["difficulty"] = ua.Difficulty
	}
	if len(set) == 0 {
		return repo.GetAssignmentByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a assignment.Assignment
	if err = repo.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, wrapErr(err, "updating assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) DeleteAssignment(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, assignment.ErrNotFound
	}

	res, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, wrapErr(err, "deleting assignment")
	}
	return res.DeletedCount, nil
}

func (repo *assignmentRepository) CountAssignments(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	total, err := repo.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, wrapErr(err, "counting assignments")
	}
	return total, nil
}

func (repo *assignmentRepository) DistinctCreators(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	vals, err := repo.col.Distinct(ctx, "creatorEmail", bson.M{})
	if err != nil {
		return nil, wrapErr(err, "listing distinct creators")
	}
	return distinctStrings(vals), nil
}

// distinctStrings narrows a Distinct result to its string values.
func distinctStrings(vals []interface{}) []string {
	strs := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}
