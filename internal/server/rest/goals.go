package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

func ListGoalsHandler(gs GoalService) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := gs.List(c.Request().Context())
		if err != nil {
			return InternalServerError(msgLoadGoalsFailed, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

func CreateGoalHandler(gs GoalService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		in := services.CreateGoalInput{}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			return BadRequest(msgInvalidJSON, err)
		}

		goal, err := gs.Create(req.Context(), in)
		if err != nil {
			return fromServiceError(err, msgGoalNotFound, msgInternal)
		}
		return c.JSON(http.StatusCreated, goal)
	}
}

// UpdateGoalHandler sets the completion flag of the goal named by ?id=.
// The id is checked before the body so a missing id wins over a bad body.
func UpdateGoalHandler(gs GoalService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := c.QueryParam(common.IDQueryParam)
		if id == "" {
			return BadRequest("Missing goal ID", nil)
		}

		in := services.UpdateGoalInput{}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			return BadRequest(msgInvalidJSON, err)
		}

		goal, err := gs.SetCompleted(req.Context(), id, in)
		if err != nil {
			return fromServiceError(err, msgGoalNotFound, msgUpdateFailed)
		}
		return c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoalHandler(gs GoalService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.QueryParam(common.IDQueryParam)

		if err := gs.Delete(c.Request().Context(), id); err != nil {
			return fromServiceError(err, msgGoalNotFound, msgDeleteFailed)
		}
		return c.JSON(http.StatusOK, Message{Message: "Goal deleted"})
	}
}
