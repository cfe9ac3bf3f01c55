package context

import (
	"bazaar/internal/domain/policy"

	"github.com/labstack/echo/v4"
)

// KeyViewer stores the resolved session identity for handlers.
const KeyViewer ContextKey = "viewer"

// SetViewer stores the authenticated viewer in the echo context.
func SetViewer(c echo.Context, viewer policy.Viewer) {
	c.Set(string(KeyViewer), viewer)
}

// GetViewer retrieves the authenticated viewer from the echo context. The
// boolean is false on routes that never passed the session middleware.
func GetViewer(c echo.Context) (policy.Viewer, bool) {
	viewer, ok := c.Get(string(KeyViewer)).(policy.Viewer)

	return viewer, ok
}
