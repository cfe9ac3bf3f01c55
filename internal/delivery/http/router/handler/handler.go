// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/policy"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// viewer returns the identity resolved by the session middleware. Routes
// registered behind Authenticate always have one; hitting this error
// means a route was wired without the middleware.
func viewer(c echo.Context) (policy.Viewer, error) {
	v, ok := deliverycontext.GetViewer(c)
	if !ok {
		return policy.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "no session on request")
	}

	return v, nil
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "invalid "+name)
	}

	return id, nil
}

// listQuery reads the shared sort and pagination query parameters.
func listQuery(c echo.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	reverse, _ := strconv.ParseBool(c.QueryParam("reverse"))

	return usecase.ListQuery{
		SortKey:  c.QueryParam("sortBy"),
		Reverse:  reverse,
		Page:     page,
		PageSize: pageSize,
	}
}

// parseDate parses an optional yyyy-mm-dd query or body field.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
