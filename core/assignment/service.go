package assignment

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/educircle/backend/core"
)

var (
	// errors
	ErrNotFound = errors.New("assignment not found")
	ErrNotOwner = errors.New("only the assignment creator may do this")
)

// homeSampleSize is the number of random assignments teased on the homepage.
const homeSampleSize = 5

type (
	Repository interface {
		CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		// FilterAssignments applies AND operation on available QueryFilter fields.
		// QueryFilter.Difficulty is an exact match; QueryFilter.Search does a
		// case-insensitive match on Assignment.Title. It returns the requested
		// page along with the total number of matching assignments.
		FilterAssignments(ctx context.Context, filter QueryFilter) ([]Assignment, int64, error)
		// SampleAssignments returns n distinct assignments picked uniformly at
		// random by the store, projected to display fields.
		SampleAssignments(ctx context.Context, n int) ([]Assignment, error)
		GetAssignmentByID(ctx context.Context, id string) (Assignment, error)
		UpdateAssignment(ctx context.Context, id string, ua UpdateAssignment) (Assignment, error)
		DeleteAssignment(ctx context.Context, id string) (int64, error)
		CountAssignments(ctx context.Context) (int64, error)
		DistinctCreators(ctx context.Context) ([]string, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, identity core.Identity, na NewAssignment) (Assignment, error) {
	if err := core.SelfMatch(na.CreatorEmail, identity.Email); err != nil {
		return Assignment{}, err
	}
	a := Assignment{
		Title:        na.Title,
		Thumbnail:    na.Thumbnail,
		Description:  na.Description,
		Marks:        na.Marks,
		Difficulty:   na.Difficulty,
		CreatorEmail: core.CleanString(identity.Email, true /* lower */),
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(ctx, a)
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) (Page, error) {
	filter.Clean()

	assignments, total, err := svc.repo.FilterAssignments(ctx, filter)
	if err != nil {
		return Page{}, err
	}
	limit := int64(filter.Limit)
	return Page{
		Assignments: assignments,
		Total:       total,
		TotalPages:  (total + limit - 1) / limit,
		Page:        filter.Page,
	}, nil
}

func (svc *Service) Home(ctx context.Context) ([]Assignment, error) {
	return svc.repo.SampleAssignments(ctx, homeSampleSize)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Assignment, error) {
	return svc.repo.GetAssignmentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, identity core.Identity, id string, ua UpdateAssignment) (Assignment, error) {
	if err := core.SelfMatch(ua.CreatorEmail, identity.Email); err != nil {
		return Assignment{}, err
	}

	a, err := svc.repo.GetAssignmentByID(ctx, id)
	if err != nil {
		return Assignment{}, err
	}
	if err = core.SelfMatch(a.CreatorEmail, identity.Email); err != nil {
		return Assignment{}, ErrNotOwner
	}
	return svc.repo.UpdateAssignment(ctx, id, ua)
}

func (svc *Service) Delete(ctx context.Context, id, requesterEmail string) (int64, error) {
	a, err := svc.repo.GetAssignmentByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if a.CreatorEmail != core.CleanString(requesterEmail, true /* lower */) {
		return 0, ErrNotOwner
	}
	return svc.repo.DeleteAssignment(ctx, id)
}
