package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/educircle/backend/core"
)

// Difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const defaultPageSize = 10

// Assignment is a task definition created by an instructor. Only the creator
// (matched by email) may update or delete it.
type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Thumbnail    string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Marks        int                `bson:"marks" json:"marks"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	CreatorEmail string             `bson:"creatorEmail,omitempty" json:"creatorEmail,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"` // UTC
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title        string `json:"title" validate:"required"`
	Thumbnail    string `json:"thumbnail" validate:"omitempty,url"`
	Description  string `json:"description" validate:"required"`
	Marks        int    `json:"marks" validate:"required,gte=1"`
	Difficulty   string `json:"difficulty" validate:"required,difficulty"`
	CreatorEmail string `json:"creatorEmail" validate:"omitempty,email"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Difficulty = core.CleanString(na.Difficulty, true /* lower */)
	na.CreatorEmail = core.CleanString(na.CreatorEmail, true /* lower */)
	return core.Validate.Struct(na)
}

// UpdateAssignment defines what information may be provided to modify an
// existing Assignment. Empty fields are left untouched; the creator cannot
// be changed.
type UpdateAssignment struct {
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail" validate:"omitempty,url"`
	Description  string `json:"description"`
	Marks        int    `json:"marks" validate:"omitempty,gte=1"`
	Difficulty   string `json:"difficulty" validate:"omitempty,difficulty"`
	CreatorEmail string `json:"creatorEmail" validate:"omitempty,email"`
}

func (ua *UpdateAssignment) Validate() error {
	ua.Title = core.CleanString(ua.Title)
	ua.Description = core.CleanString(ua.Description)
	ua.Difficulty = core.CleanString(ua.Difficulty, true /* lower */)
	ua.CreatorEmail = core.CleanString(ua.CreatorEmail, true /* lower */)
	return core.Validate.Struct(ua)
}

type QueryFilter struct {
	Difficulty string `query:"difficulty"`
	Search     string `query:"search"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

func (qf *QueryFilter) Clean() {
	qf.Difficulty = core.CleanString(qf.Difficulty, true /* lower */)
	qf.Search = core.CleanString(qf.Search)
	if qf.Page < 1 {
		qf.Page = 1
	}
	if qf.Limit < 1 {
		qf.Limit = defaultPageSize
	}
}

// Page is one page of matching assignments.
type Page struct {
	Assignments []Assignment `json:"assignments"`
	Total       int64        `json:"total"`
	TotalPages  int64        `json:"totalPages"`
	Page        int          `json:"page"`
}
