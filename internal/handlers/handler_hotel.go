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

// hotelHandler handles HTTP requests for hotel reference data.
type hotelHandler struct {
	hotelService portssvc.HotelSvcFacade
	userService  portssvc.UserSvcFacade
}

func newHotelHandler(hotelService portssvc.HotelSvcFacade, userService portssvc.UserSvcFacade) *hotelHandler {
	return &hotelHandler{hotelService: hotelService, userService: userService}
}

// registerHotelRoutes registers hotel reference data routes.
func registerHotelRoutes(rg *gin.RouterGroup, hotelService portssvc.HotelSvcFacade, userService portssvc.UserSvcFacade) {
	h := newHotelHandler(hotelService, userService)

	hotels := rg.Group("/hotels")
	{
		hotels.GET("", h.listHotels)
		hotels.POST("", h.createHotel)
	}
}

// listHotels godoc
// @Summary List hotels available for fulfillment
// @Tags hotels
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Security BearerAuth
// @Router /hotels [get]
func (h *hotelHandler) listHotels(c *gin.Context) {
	if _, _, ok := currentActor(c, h.userService); !ok {
		return
	}

	hotels, err := h.hotelService.ListHotels(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list hotels")
		return
	}
	c.JSON(http.StatusOK, dto.ToHotelResponses(hotels))
}

// createHotel godoc
// @Summary Register a hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotel body dto.CreateHotelRequest true "Hotel details"
// @Success 201 {object} dto.HotelResponse
// @Failure 403 {object} map[string]string "GA or SUPER_ADMIN only"
// @Failure 409 {object} map[string]string "Hotel code already exists"
// @Security BearerAuth
// @Router /hotels [post]
func (h *hotelHandler) createHotel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createHotel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, user, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	if actor.Role != domain.RoleGA && actor.Role != domain.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage hotels"})
		return
	}

	hotel, err := h.hotelService.CreateHotel(c.Request.Context(), req, user.UserID)
	if err != nil {
		respondError(c, err, "Failed to create hotel")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}
