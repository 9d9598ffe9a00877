package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/educircle/backend/core/submission"
)

type submissionRepository struct {
	col *mongo.Collection
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *mongo.Database) submission.Repository {
	return &submissionRepository{col: db.Collection(submissionsCollection)}
}

func (repo *submissionRepository) CreateSubmission(ctx context.Context, s submission.Submission) (submission.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.col.InsertOne(ctx, s)
	if err != nil {
		return submission.Submission{}, wrapErr(err, "inserting submission")
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (repo *submissionRepository) FilterSubmissions(ctx context.Context, f submission.QueryFilter) ([]submission.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if f.StudentEmail != "" {
		filter["studentEmail"] = f.StudentEmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cur, err := repo.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr(err, "querying submissions")
	}

	submissions := make([]submission.Submission, 0)
	if err = cur.All(ctx, &submissions); err != nil {
		return nil, wrapErr(err, "decoding submissions")
	}
	return submissions, nil
}

func (repo *submissionRepository) GetSubmissionByID(ctx context.Context, id string) (submission.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return submission.Submission{}, submission.ErrNotFound
	}

	var s submission.Submission
	if err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, wrapErr(err, "finding submission")
	}
	return s, nil
}

func (repo *submissionRepository) GradeSubmission(ctx context.Context, id string, gs submission.GradeSubmission, markedAt time.Time) (submission.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return submission.Submission{}, submission.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"obtainedMarks": gs.ObtainedMarks,
		"feedback":      gs.Feedback,
		"markedBy":      gs.MarkedBy,
		"markedAt":      markedAt,
		"status":        submission.StatusCompleted,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s submission.Submission
	if err = repo.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, wrapErr(err, "grading submission")
	}
	return s, nil
}

func (repo *submissionRepository) DistinctStudents(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	vals, err := repo.col.Distinct(ctx, "studentEmail", bson.M{})
	if err != nil {
		return nil, wrapErr(err, "listing distinct students")
	}
	return distinctStrings(vals), nil
}
