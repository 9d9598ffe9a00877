package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educircle/backend/core"
	"github.com/educircle/backend/core/assignment"
)

type assignmentApi struct {
	service *assignment.Service
}

func registerAssignmentAPI(e *echo.Echo, auth echo.MiddlewareFunc, svc *assignment.Service) {
	api := assignmentApi{service: svc}

	g := e.Group("/assignments")

	// un-authed endpoints
	g.GET("", api.assignmentQuery)
	g.GET("/home", api.assignmentHome)
	g.GET("/:id", api.assignmentRetrieve)
	g.DELETE("/:id", api.assignmentDestroy) // owner-checked against the email param

	// authed endpoints
	g.POST("", api.assignmentCreate, auth)
	g.PUT("/:id", api.assignmentUpdate, auth)
}

// Handlers

func (api *assignmentApi) assignmentCreate(ctx echo.Context) error {
	data := new(assignment.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	identity, err := getContextIdentity(ctx)
	if err != nil {
		return err
	}

	a, err := api.service.Create(ctx.Request().Context(), identity, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *assignmentApi) assignmentQuery(ctx echo.Context) error {
	filter := new(assignment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	page, err := api.service.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *assignmentApi) assignmentHome(ctx echo.Context) error {
	assignments, err := api.service.Home(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) assignmentRetrieve(ctx echo.Context) error {
	a, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) assignmentUpdate(ctx echo.Context) error {
	data := new(assignment.UpdateAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	identity, err := getContextIdentity(ctx)
	if err != nil {
		return err
	}

	a, err := api.service.Update(ctx.Request().Context(), identity, ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) assignmentDestroy(ctx echo.Context) error {
	email := core.CleanString(ctx.QueryParam("email"))
	if email == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "email", Error: "this query parameter is required"})
	}

	deleted, err := api.service.Delete(ctx.Request().Context(), ctx.Param("id"), email)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}
