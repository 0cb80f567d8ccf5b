package domain

// Role is the permission level of a session.
type Role string

// Available roles.
const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Administrator identity constants.
const (
	AdminUserID   = "admin"
	AdminUserName = "Administrator"
)

// User is the authenticated principal of the current session.
// For employees, ID equals the matched Employee.ID.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Avatar mirrors the employee avatar, if any.
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewAdminUser returns the fixed administrator identity for an identifier.
func NewAdminUser(identifier string) User {
	return User{
		ID:    AdminUserID,
		Name:  AdminUserName,
		Email: NormalizeEmail(identifier),
		Role:  RoleAdmin,
	}
}

// NewEmployeeUser derives a session identity from an employee record.
func NewEmployeeUser(e Employee) User {
	return User{
		ID:     e.ID,
		Name:   e.FullName(),
		Email:  e.Email,
		Role:   RoleEmployee,
		Avatar: e.Avatar,
	}
}
