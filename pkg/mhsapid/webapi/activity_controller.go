package webapi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
	"github.com/mergington-edu/mhs/pkg/mhsdb/stor"
	"github.com/pkg/errors"
)

// ActivityController serves the activity directory: listing it, signing
// students up, and unregistering them.
type ActivityController struct {
	activityStor stor.ActivityStor
}

func NewActivityController(activityStor stor.ActivityStor) *ActivityController {
	return &ActivityController{activityStor: activityStor}
}

// IndexActivities returns the whole directory as a JSON object keyed by
// activity name.
func (c *ActivityController) IndexActivities(ctx echo.Context) error {
	activities := c.activityStor.ListActivities()

	directory := make(map[string]*mhsmodel.Activity, len(activities))
	for _, activity := range activities {
		directory[activity.Name] = activity
	}

	return ctx.JSON(http.StatusOK, directory)
}

func (c *ActivityController) SignupForActivity(ctx echo.Context) error {
	activityName, err := activityNameParam(ctx)
	if err != nil {
		return detailResponse(ctx, http.StatusBadRequest, "Invalid activity name")
	}

	email := ctx.QueryParam("email")
	if email == "" {
		return detailResponse(ctx, http.StatusBadRequest, "email query parameter is required")
	}

	_, err = c.activityStor.SignupForActivity(activityName, email)
	switch {
	case errors.Is(err, stor.ErrActivityNotFound):
		return detailResponse(ctx, http.StatusNotFound, "Activity not found")
	case errors.Is(err, stor.ErrAlreadySignedUp):
		return detailResponse(ctx, http.StatusBadRequest, "Already signed up for this activity")
	case err != nil:
		return detailResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	recordSignup(activityName)

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

func (c *ActivityController) UnregisterFromActivity(ctx echo.Context) error {
	activityName, err := activityNameParam(ctx)
	if err != nil {
		return detailResponse(ctx, http.StatusBadRequest, "Invalid activity name")
	}

	email := ctx.QueryParam("email")
	if email == "" {
		return detailResponse(ctx, http.StatusBadRequest, "email query parameter is required")
	}

	_, err = c.activityStor.UnregisterFromActivity(activityName, email)
	switch {
	case errors.Is(err, stor.ErrActivityNotFound):
		return detailResponse(ctx, http.StatusNotFound, "Activity not found")
	case errors.Is(err, stor.ErrNotSignedUp):
		return detailResponse(ctx, http.StatusBadRequest, "Student is not signed up for this activity")
	case err != nil:
		return detailResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	recordUnregister(activityName)

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// activityNameParam unescapes the activityName path segment so
// "Chess%20Club" matches "Chess Club". No other normalization happens,
// matching against the directory stays exact and case-sensitive.
func activityNameParam(ctx echo.Context) (string, error) {
	return url.PathUnescape(ctx.Param("activityName"))
}

func detailResponse(ctx echo.Context, httpError int, msg string) error {
	return ctx.JSON(httpError, map[string]string{"detail": msg})
}
