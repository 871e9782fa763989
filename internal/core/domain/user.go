package domain

// User is a login account. Role and Department are what the auth layer hands
// to the workflow engine as the Actor on every request.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	EmployeeID   *string `json:"employeeID,omitempty"` // set for EMPLOYEE accounts
	Department   *string `json:"department,omitempty"` // required for ADMIN_DEPT and HOD
	AuditFields
}

// Actor builds the workflow actor for this user.
func (u User) Actor() Actor {
	a := Actor{
		ID:          u.UserID,
		DisplayName: u.Name,
		Role:        u.Role,
	}
	if u.EmployeeID != nil {
		a.EmployeeID = *u.EmployeeID
	}
	if u.Department != nil {
		a.Department = *u.Department
	}
	return a
}
