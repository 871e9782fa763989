package domain

// Role identifies what a user is allowed to do in the approval pipeline.
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleAdminDept  Role = "ADMIN_DEPT"
	RoleHOD        Role = "HOD"
	RoleHR         Role = "HR"
	RolePM         Role = "PM"
	RoleGA         Role = "GA"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdminDept, RoleHOD, RoleHR, RolePM, RoleGA, RoleSuperAdmin:
		return true
	}
	return false
}

// RequiresDepartment reports whether the role's authority is scoped to a
// single department. ADMIN_DEPT and HOD may only act on TRFs from their own
// department; the remaining roles act organization-wide.
func (r Role) RequiresDepartment() bool {
	return r == RoleAdminDept || r == RoleHOD
}

// Actor is the authenticated identity performing a workflow action. It is
// supplied by the caller on every request; the engine never reads it from
// ambient session state.
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	// EmployeeID links the actor to an employee record; set for EMPLOYEE
	// actors so ownership of a TRF can be checked.
	EmployeeID string `json:"employeeID,omitempty"`
	// Department is required for ADMIN_DEPT and HOD actors.
	Department string `json:"department,omitempty"`
}
