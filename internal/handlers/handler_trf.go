package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/dto"
	"github.com/trf-online/trf-backend/internal/middleware"
)

// trfHandler handles HTTP requests for the travel request lifecycle.
type trfHandler struct {
	trfService  portssvc.TRFSvcFacade
	userService portssvc.UserSvcFacade
}

func newTRFHandler(trfService portssvc.TRFSvcFacade, userService portssvc.UserSvcFacade) *trfHandler {
	return &trfHandler{trfService: trfService, userService: userService}
}

// registerTRFRoutes registers the employee-facing TRF lifecycle routes.
func registerTRFRoutes(rg *gin.RouterGroup, trfService portssvc.TRFSvcFacade, userService portssvc.UserSvcFacade) {
	h := newTRFHandler(trfService, userService)

	trfs := rg.Group("/trfs")
	{
		trfs.POST("", h.createTRF)
		trfs.GET("", h.listTRFs)
		trfs.GET("/:trfID", h.getTRF)
		trfs.PUT("/:trfID", h.updateDraft)
		trfs.POST("/:trfID/submit", h.submitTRF)
		trfs.POST("/:trfID/resubmit", h.resubmitTRF)
		trfs.GET("/:trfID/history", h.getHistory)
		trfs.GET("/:trfID/actions", h.getActions)
	}
}

// createTRF godoc
// @Summary Create a new travel request draft
// @Description Creates a DRAFT TRF owned by the logged-in employee
// @Tags trfs
// @Accept json
// @Produce json
// @Param trf body dto.CreateTRFRequest true "Travel request details"
// @Success 201 {object} dto.TRFResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Only employees may create TRFs"
// @Security BearerAuth
// @Router /trfs [post]
func (h *trfHandler) createTRF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTRFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTRF", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.trfService.CreateTRF(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create travel request")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTRFResponse(trf))
}

// listTRFs godoc
// @Summary List visible travel requests
// @Description Lists the TRFs the caller may see; ?queue=... narrows to the caller's work queue
// @Tags trfs
// @Produce json
// @Param queue query string false "Work queue filter (verification, approval, pm, ga)"
// @Success 200 {array} dto.TRFResponse
// @Security BearerAuth
// @Router /trfs [get]
func (h *trfHandler) listTRFs(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	queue := portssvc.TRFQueue(c.Query("queue"))
	trfs, err := h.trfService.ListVisibleTRFs(c.Request.Context(), actor, queue)
	if err != nil {
		respondError(c, err, "Failed to list travel requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToTRFResponses(trfs))
}

// getTRF godoc
// @Summary Get a travel request
// @Tags trfs
// @Produce json
// @Param trfID path string true "TRF ID"
// @Success 200 {object} dto.TRFResponse
// @Failure 403 {object} map[string]string "Not visible to the caller"
// @Failure 404 {object} map[string]string "TRF not found"
// @Security BearerAuth
// @Router /trfs/{trfID} [get]
func (h *trfHandler) getTRF(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.trfService.GetTRF(c.Request.Context(), actor, c.Param("trfID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve travel request")
		return
	}

	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// updateDraft godoc
// @Summary Update the payload of a draft travel request
// @Description Replaces the request content of a DRAFT or NEEDS_REVISION TRF; owner only
// @Tags trfs
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param trf body dto.CreateTRFRequest true "Updated travel request details"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "TRF is no longer editable"
// @Security BearerAuth
// @Router /trfs/{trfID} [put]
func (h *trfHandler) updateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTRFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.trfService.UpdateDraft(c.Request.Context(), actor, c.Param("trfID"), req)
	if err != nil {
		respondError(c, err, "Failed to update travel request")
		return
	}

	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// submitTRF godoc
// @Summary Submit a draft into the approval pipeline
// @Tags trfs
// @Produce json
// @Param trfID path string true "TRF ID"
// @Success 200 {object} dto.TRFResponse
// @Failure 403 {object} map[string]string "Only the owning employee may submit"
// @Failure 409 {object} map[string]string "Not in DRAFT"
// @Security BearerAuth
// @Router /trfs/{trfID}/submit [post]
func (h *trfHandler) submitTRF(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.trfService.Submit(c.Request.Context(), actor, c.Param("trfID"))
	if err != nil {
		respondError(c, err, "Failed to submit travel request")
		return
	}

	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// resubmitTRF godoc
// @Summary Resubmit a revised travel request
// @Description Re-enters a NEEDS_REVISION TRF at SUBMITTED; owner only
// @Tags trfs
// @Produce json
// @Param trfID path string true "TRF ID"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "Not in NEEDS_REVISION"
// @Security BearerAuth
// @Router /trfs/{trfID}/resubmit [post]
func (h *trfHandler) resubmitTRF(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.trfService.Resubmit(c.Request.Context(), actor, c.Param("trfID"))
	if err != nil {
		respondError(c, err, "Failed to resubmit travel request")
		return
	}

	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// getHistory godoc
// @Summary Get the status history of a travel request
// @Description Returns the complete audit trail in chronological order
// @Tags trfs
// @Produce json
// @Param trfID path string true "TRF ID"
// @Success 200 {array} dto.AuditEntryResponse
// @Security BearerAuth
// @Router /trfs/{trfID}/history [get]
func (h *trfHandler) getHistory(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	entries, err := h.trfService.GetStatusHistory(c.Request.Context(), actor, c.Param("trfID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve status history")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}

// getActions godoc
// @Summary Get the actions the caller may take on a travel request
// @Tags trfs
// @Produce json
// @Param trfID path string true "TRF ID"
// @Success 200 {object} dto.ActionsResponse
// @Security BearerAuth
// @Router /trfs/{trfID}/actions [get]
func (h *trfHandler) getActions(c *gin.Context) {
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	set, err := h.trfService.AvailableActions(c.Request.Context(), actor, c.Param("trfID"))
	if err != nil {
		respondError(c, err, "Failed to compute available actions")
		return
	}

	c.JSON(http.StatusOK, dto.ToActionsResponse(set))
}
