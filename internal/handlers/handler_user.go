package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/dto"
	"github.com/trf-online/trf-backend/internal/middleware"
)

// userHandler handles HTTP requests for login accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(userService portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: userService}
}

// registerUserRoutes registers account management routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("/me", h.getMe)
		users.GET("/:userID", h.getUser)
	}
}

// createUser godoc
// @Summary Create a login account
// @Description SUPER_ADMIN only. EMPLOYEE accounts must reference an employee record.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "SUPER_ADMIN only"
// @Failure 409 {object} map[string]string "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, user, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	if actor.Role != domain.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only SUPER_ADMIN may create accounts"})
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), req, user.UserID)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	logger.Info("User account created", slog.String("new_user_id", created.UserID), slog.String("role", string(created.Role)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

// getMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	_, user, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "SUPER_ADMIN only"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	if actor.Role != domain.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only SUPER_ADMIN may inspect accounts"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
