package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educircle/backend/core/review"
)

type reviewApi struct {
	service *review.Service
}

func registerReviewAPI(e *echo.Echo, auth echo.MiddlewareFunc, svc *review.Service) {
	api := reviewApi{service: svc}

	rg := e.Group("/reviews")
	rg.GET("", api.reviewQuery)
	rg.POST("", api.reviewCreate, auth)

	bg := e.Group("/bookmarks", auth)
	bg.GET("", api.bookmarkQuery)
	bg.POST("", api.bookmarkCreate)
	bg.DELETE("/:assignmentId", api.bookmarkDestroy)
}

// Handlers

func (api *reviewApi) reviewQuery(ctx echo.Context) error {
	reviews, err := api.service.QueryReviews(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reviews)
}

func (api *reviewApi) reviewCreate(ctx echo.Context) error {
	data := new(review.NewReview)
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

	r, err := api.service.AddReview(ctx.Request().Context(), identity, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *reviewApi) bookmarkQuery(ctx echo.Context) error {
	identity, err := getContextIdentity(ctx)
	if err != nil {
		return err
	}

	bookmarks, err := api.service.QueryBookmarks(ctx.Request().Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookmarks)
}

func (api *reviewApi) bookmarkCreate(ctx echo.Context) error {
	data := new(review.NewBookmark)
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

	b, err := api.service.AddBookmark(ctx.Request().Context(), identity, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api *reviewApi) bookmarkDestroy(ctx echo.Context) error {
	identity, err := getContextIdentity(ctx)
	if err != nil {
		return err
	}

	if err := api.service.RemoveBookmark(ctx.Request().Context(), identity, ctx.Param("assignmentId")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
