package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/middleware"
)

// currentActor resolves the authenticated user into the workflow actor.
// On failure it writes the response itself and returns ok=false.
func currentActor(c *gin.Context, userSvc portssvc.UserReaderSvc) (domain.Actor, *domain.User, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Actor{}, nil, false
	}

	user, err := userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve authenticated user", "user_id", userID, "error", err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Actor{}, nil, false
	}

	return user.Actor(), user, true
}
