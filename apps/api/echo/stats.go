package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educircle/backend/core/stats"
)

type statsApi struct {
	service *stats.Service
}

func registerStatsAPI(e *echo.Echo, svc *stats.Service) {
	api := statsApi{service: svc}

	e.GET("/stats", api.statsRetrieve)
}

func (api *statsApi) statsRetrieve(ctx echo.Context) error {
	result, err := api.service.Compute(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}
