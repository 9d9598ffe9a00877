package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educircle/backend/core"
	"github.com/educircle/backend/core/submission"
)

type submissionApi struct {
	service *submission.Service
}

func registerSubmissionAPI(e *echo.Echo, auth echo.MiddlewareFunc, svc *submission.Service) {
	api := submissionApi{service: svc}

	g := e.Group("/submissions")

	g.GET("", api.submissionQuery, auth)
	g.POST("", api.submissionCreate, auth)
	g.PATCH("/:id", api.submissionGrade)
}

// Handlers

func (api *submissionApi) submissionQuery(ctx echo.Context) error {
	filter := new(submission.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	identity, err := getContextIdentity(ctx)
	if err != nil {
		return err
	}
	// callers may only list their own submissions
	if err = core.SelfMatch(filter.StudentEmail, identity.Email); err != nil {
		return err
	}

	submissions, err := api.service.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, submissions)
}

func (api *submissionApi) submissionCreate(ctx echo.Context) error {
	data := new(submission.NewSubmission)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *submissionApi) submissionGrade(ctx echo.Context) error {
	data := new(submission.GradeSubmission)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.service.Grade(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}
