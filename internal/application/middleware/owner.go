package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

const ownerContextKey = "owner_id"

// OwnerResolver stores the requesting owner id in the echo context.
// The id comes from header when present and from defaultOwner otherwise.
// Header values must fit the INTEGER user_id column.
func OwnerResolver(header string, defaultOwner int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := defaultOwner
			if raw := c.Request().Header.Get(header); raw != "" {
				parsed, err := numberutils.ToPositiveInt32(raw)
				if err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("owner.error.invalid", header)})
				}
				ownerID = int64(parsed)
			}
			c.Set(ownerContextKey, ownerID)
			return next(c)
		}
	}
}

// OwnerID returns the id stored by OwnerResolver.
func OwnerID(c echo.Context) (int64, bool) {
	ownerID, ok := c.Get(ownerContextKey).(int64)
	return ownerID, ok
}
