package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

func ListVibesHandler(vs VibeService) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := vs.List(c.Request().Context())
		if err != nil {
			return InternalServerError(msgLoadVibesFailed, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

func CreateVibeHandler(vs VibeService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		in := services.CreateVibeInput{}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			return BadRequest(msgInvalidJSON, err)
		}

		vibe, err := vs.Create(req.Context(), in)
		if err != nil {
			return fromServiceError(err, msgVibeNotFound, msgInternal)
		}
		return c.JSON(http.StatusCreated, vibe)
	}
}

func DeleteVibeHandler(vs VibeService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.QueryParam(common.IDQueryParam)

		if err := vs.Delete(c.Request().Context(), id); err != nil {
			return fromServiceError(err, msgVibeNotFound, msgDeleteFailed)
		}
		return c.JSON(http.StatusOK, Message{Message: "Vibe deleted"})
	}
}
