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

// employeeHandler handles HTTP requests for the employee registry.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	userService     portssvc.UserSvcFacade
}

func newEmployeeHandler(employeeService portssvc.EmployeeSvcFacade, userService portssvc.UserSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: employeeService, userService: userService}
}

// registerEmployeeRoutes registers employee registry routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, userService portssvc.UserSvcFacade) {
	h := newEmployeeHandler(employeeService, userService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
	}
}

// canManageEmployees reports whether the role may mutate the registry.
func canManageEmployees(role domain.Role) bool {
	return role == domain.RoleSuperAdmin || role == domain.RoleHR
}

// createEmployee godoc
// @Summary Register a new employee or visitor
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 403 {object} map[string]string "HR or SUPER_ADMIN only"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, user, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	if !canManageEmployees(actor.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage employees"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, user.UserID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param type query string false "Filter by employee type (EMPLOYEE, VISITOR)"
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	if _, _, ok := currentActor(c, h.userService); !ok {
		return
	}

	var employeeType *domain.EmployeeType
	if t := c.Query("type"); t != "" {
		et := domain.EmployeeType(t)
		employeeType = &et
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), employeeType)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	if _, _, ok := currentActor(c, h.userService); !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee record
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 403 {object} map[string]string "HR or SUPER_ADMIN only"
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, user, ok := currentActor(c, h.userService)
	if !ok {
		return
	}
	if !canManageEmployees(actor.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage employees"})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("employeeID"), req, user.UserID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}
