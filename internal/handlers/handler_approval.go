package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portssvc "github.com/trf-online/trf-backend/internal/core/ports/services"
	"github.com/trf-online/trf-backend/internal/core/workflow"
	"github.com/trf-online/trf-backend/internal/dto"
	"github.com/trf-online/trf-backend/internal/middleware"
)

// approvalHandler handles the status-changing approval endpoints. Which role
// may do what is decided by the workflow engine, not here; the handler only
// resolves the actor and forwards the decision.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
	userService     portssvc.UserSvcFacade
}

func newApprovalHandler(approvalService portssvc.ApprovalSvcFacade, userService portssvc.UserSvcFacade) *approvalHandler {
	return &approvalHandler{approvalService: approvalService, userService: userService}
}

// registerApprovalRoutes registers the per-stage decision routes.
func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade, userService portssvc.UserSvcFacade) {
	h := newApprovalHandler(approvalService, userService)

	trfs := rg.Group("/trfs")
	{
		trfs.POST("/:trfID/verify", h.verify)
		trfs.POST("/:trfID/hod-approval", h.hodApproval)
		trfs.POST("/:trfID/hr-approval", h.hrApproval)
		trfs.POST("/:trfID/pm-approval", h.pmApproval)
		trfs.POST("/:trfID/revise", h.revise)
		trfs.POST("/:trfID/process", h.process)
	}
}

func (h *approvalHandler) bindAction(c *gin.Context) (dto.ActionRequest, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for approval action", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return dto.ActionRequest{}, false
	}
	return req, true
}

// verify godoc
// @Summary Record the admin department verification
// @Description approved=true routes the TRF to the parallel HoD/HR stage; approved=false sends it back for revision
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param decision body dto.ActionRequest true "Verification decision"
// @Success 200 {object} dto.TRFResponse
// @Failure 403 {object} map[string]string "Wrong role or department"
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/verify [post]
func (h *approvalHandler) verify(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.approvalService.Verify(c.Request.Context(), actor, c.Param("trfID"), req.Approved, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to record verification")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// hodApproval godoc
// @Summary Record the head-of-department decision
// @Description A HoD rejection is terminal for the TRF
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param decision body dto.ActionRequest true "Approval decision"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/hod-approval [post]
func (h *approvalHandler) hodApproval(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.approvalService.HODApprove(c.Request.Context(), actor, c.Param("trfID"), req.Approved, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to record HoD decision")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// hrApproval godoc
// @Summary Record the HR decision
// @Description An HR rejection sends the TRF back for revision instead of killing it
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param decision body dto.ActionRequest true "Approval decision"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/hr-approval [post]
func (h *approvalHandler) hrApproval(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.approvalService.HRApprove(c.Request.Context(), actor, c.Param("trfID"), req.Approved, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to record HR decision")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// pmApproval godoc
// @Summary Record the project manager's final sign-off
// @Description A PM rejection is terminal
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param decision body dto.ActionRequest true "Approval decision"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/pm-approval [post]
func (h *approvalHandler) pmApproval(c *gin.Context) {
	req, ok := h.bindAction(c)
	if !ok {
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.approvalService.PMApprove(c.Request.Context(), actor, c.Param("trfID"), req.Approved, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to record PM decision")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// revise godoc
// @Summary Send a travel request back for revision
// @Description Available to ADMIN_DEPT, HoD and HR on their pending stages; keeps the TRF recoverable
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param request body dto.ReviseRequest true "Revision remarks"
// @Success 200 {object} dto.TRFResponse
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/revise [post]
func (h *approvalHandler) revise(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for revise", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	trf, err := h.approvalService.Revise(c.Request.Context(), actor, c.Param("trfID"), req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to send travel request back for revision")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}

// process godoc
// @Summary Record GA fulfillment and close the travel request
// @Description Records vouchers, amount and attachments; moves the TRF to its terminal processed state
// @Tags approvals
// @Accept json
// @Produce json
// @Param trfID path string true "TRF ID"
// @Param fulfillment body dto.ProcessRequest true "Fulfillment details"
// @Success 200 {object} dto.TRFResponse
// @Failure 403 {object} map[string]string "GA only"
// @Failure 409 {object} map[string]string "Invalid transition or concurrent update"
// @Security BearerAuth
// @Router /trfs/{trfID}/process [post]
func (h *approvalHandler) process(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for process", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, _, ok := currentActor(c, h.userService)
	if !ok {
		return
	}

	fulfillment := workflow.Fulfillment{
		VoucherDetails: domain.VoucherDetails{
			HotelVoucher:   req.VoucherDetails.HotelVoucher,
			FlightTicket:   req.VoucherDetails.FlightTicket,
			Transportation: req.VoucherDetails.Transportation,
			Other:          req.VoucherDetails.Other,
		},
		TotalAmount:       req.TotalAmount,
		Files:             req.Files,
		RemarksToEmployee: req.RemarksToEmployee,
	}

	trf, err := h.approvalService.GAProcess(c.Request.Context(), actor, c.Param("trfID"), fulfillment, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to process travel request")
		return
	}
	c.JSON(http.StatusOK, dto.ToTRFResponse(trf))
}
