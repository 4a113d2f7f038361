package handler

import (
	"reliefmap/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user ID set by the auth middleware.
func actorID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
